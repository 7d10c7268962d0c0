package languages

// Polish exercise catalog. Types and requirements follow the official
// certificate exam writing forms; short forms expect 25-30 words, long
// forms 170-175.
var Polish = newCatalog("polish", "Polish", []Definition{
	{
		Code: "wishes", Name: "życzenia (wishes)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Include place and date, address to the recipient (optional in neutral style), main content specifying the occasion and text adjusted to it, signature. Use formal greetings and full name for official wishes, informal greetings and first name for private wishes.",
	},
	{
		Code: "greetings", Name: "pozdrowienia (greetings)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Include place and date, address to the recipient (optional in neutral style), main content, signature. Use formal greetings and full name for official greetings, informal greetings and first name for private greetings. Often sent on postcards.",
	},
	{
		Code: "invitation", Name: "zaproszenie (invitation)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Specify who invites whom, the occasion, and where/when the event takes place. May include dress code information and request for RSVP. Use formal greetings and full name for official invitations, informal greetings and first name for private invitations.",
	},
	{
		Code: "notice", Name: "zawiadomienie (notice)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Informative text about an event that happened or will happen. Content varies based on official/private nature, sender/recipient, and event type. Must include place and date, what/where/when, and who is notifying.",
	},
	{
		Code: "announcement", Name: "ogłoszenie (announcement)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Informative text, often about selling, swapping, renting, job offers, lost/found items. Should be concise. Must include who is announcing, the purpose (selling, buying, etc.), the subject (job, car, pet, etc.), and contact information.",
	},
	{
		Code: "letter", Name: "list (letter)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Include place and date (top right), greeting to the addressee, main content (introduction stating purpose, development, conclusion), closing greetings, and signature. Style (formal/informal) depends on the context.",
	},
	{
		Code: "description", Name: "opis (description)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Detailed portrayal based on observation. Should be realistic and objective. Describe features in a specific order (e.g., general to specific). Includes introduction, development, and conclusion. Specific elements vary for person, object, or place.",
	},
	{
		Code: "characterization", Name: "charakterystyka osoby (characterization)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Description combined with evaluation, covering external and internal aspects. Include personal data (name, age, job), appearance, distinguishing character traits (positive/negative), intellectual traits, interests, and overall assessment.",
	},
	{
		Code: "story", Name: "opowiadanie (story)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Narrates a sequence of real or fictional events. Consists of introduction, development, and conclusion. Usually written in the past tense, can include dialogue. Can be told in 1st or 3rd person. Should follow a logical sequence of events.",
	},
	{
		Code: "report", Name: "sprawozdanie (report)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Relates events the writer participated in or witnessed (e.g., trip, concert). Describes events chronologically. Usually written in the past tense. Should include time, place, circumstances, purpose, course of events, and evaluation.",
	},
	{
		Code: "review", Name: "recenzja (review)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Expresses personal opinion about a film, book, show, etc. Consists of introduction (identifying the subject), development (elements of description, summary, report), and conclusion (subjective evaluation with justification).",
	},
	{
		Code: "essay", Name: "esej (essay)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Reflective-informative writing developing and explaining a topic with the writer's views. Needs introduction, development, conclusion. Should include subjective views (opinion, commentary, interpretation, feelings) and supporting arguments.",
	},
})
