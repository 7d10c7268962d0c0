package languages

import "testing"

func TestAllCatalogsRegistered(t *testing.T) {
	for _, code := range []string{"polish", "english", "portuguese"} {
		c, ok := Get(code)
		if !ok {
			t.Fatalf("catalog %q not registered", code)
		}
		if len(c.Types()) == 0 {
			t.Fatalf("catalog %q has no exercise types", code)
		}
	}
	if _, ok := Get("klingon"); ok {
		t.Fatal("expected unknown language to be absent")
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range Levels {
		if !ValidLevel(l.Code) {
			t.Errorf("level %q should be valid", l.Code)
		}
	}
	if ValidLevel("Z9") {
		t.Error("Z9 should not be a valid level")
	}
}

func TestValidType(t *testing.T) {
	c, _ := Get("polish")

	if !c.ValidType(TypeRandom) || !c.ValidType(TypeCustom) {
		t.Error("synthetic types must be selectable")
	}
	if !c.ValidType("essay") {
		t.Error("essay should be a valid polish type")
	}
	if c.ValidType("sonnet") {
		t.Error("sonnet should not be a valid polish type")
	}
}

func TestResolveConcrete(t *testing.T) {
	c, _ := Get("english")

	d, err := c.Resolve("letter")
	if err != nil {
		t.Fatalf("resolve letter: %v", err)
	}
	if d.Code != "letter" || d.MinWords == 0 || d.MaxWords < d.MinWords {
		t.Fatalf("unexpected definition: %+v", d)
	}
}

func TestResolveRandomNeverSynthetic(t *testing.T) {
	c, _ := Get("polish")
	concrete := make(map[string]bool)
	for _, code := range c.Types() {
		concrete[code] = true
	}

	for range 200 {
		d, err := c.Resolve(TypeRandom)
		if err != nil {
			t.Fatalf("resolve random: %v", err)
		}
		if d.Code == TypeRandom || d.Code == TypeCustom {
			t.Fatalf("random resolved to synthetic code %q", d.Code)
		}
		if !concrete[d.Code] {
			t.Fatalf("random resolved outside catalog: %q", d.Code)
		}
	}
}

func TestResolveCustomFails(t *testing.T) {
	c, _ := Get("english")
	if _, err := c.Resolve(TypeCustom); err == nil {
		t.Fatal("expected error resolving custom")
	}
	if _, err := c.Resolve("nonexistent"); err == nil {
		t.Fatal("expected error resolving unknown type")
	}
}

func TestTypesDoesNotAliasInternalOrder(t *testing.T) {
	c, _ := Get("english")
	types := c.Types()
	types[0] = "mutated"

	if c.Types()[0] == "mutated" {
		t.Fatal("Types must return a copy")
	}
}
