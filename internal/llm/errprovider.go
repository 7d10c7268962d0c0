package llm

import "context"

// errorProvider fails every request with a fixed error. It stands in
// for a real provider when configuration is incomplete, so the app can
// still start and the first action surfaces the configuration problem.
type errorProvider struct {
	err error
}

// NewErrorProvider returns a Provider whose Generate always fails
// with err.
func NewErrorProvider(err error) Provider {
	return &errorProvider{err: err}
}

func (p *errorProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, p.err
}

func (p *errorProvider) ModelID() string {
	return "unconfigured"
}
