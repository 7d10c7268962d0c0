package languages

// English exercise catalog.
var English = newCatalog("english", "English", []Definition{
	{
		Code: "wishes", Name: "wishes / congratulations",
		MinWords: 25, MaxWords: 30,
		Requirements: "Include date, recipient, main content expressing your wishes for the specific occasion, and signature. Use formal language and full name for official wishes, informal language and first name for personal wishes.",
	},
	{
		Code: "greetings", Name: "greetings",
		MinWords: 25, MaxWords: 30,
		Requirements: "Include date, recipient, main content, and signature. Use formal language and full name for official greetings, informal language and first name for personal greetings. Often sent on postcards or in short messages.",
	},
	{
		Code: "invitation", Name: "invitation",
		MinWords: 25, MaxWords: 30,
		Requirements: "Specify who is inviting whom, the occasion, and where/when the event takes place. Include dress code information and RSVP instructions if appropriate. Use formal language for official invitations, informal language for private invitations.",
	},
	{
		Code: "notice", Name: "notice",
		MinWords: 25, MaxWords: 30,
		Requirements: "Informative text about an event that happened or will happen. Include date, relevant details about what/where/when, and who is providing the notice. Adapt tone based on formal/informal context.",
	},
	{
		Code: "announcement", Name: "announcement / advertisement",
		MinWords: 25, MaxWords: 30,
		Requirements: "Concise informative text about sales, exchanges, rentals, job offers, lost/found items, etc. Include who is announcing, the purpose (selling, buying, etc.), the subject, and contact information.",
	},
	{
		Code: "letter", Name: "letter (formal/informal)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Include date, greeting to the addressee, main content (introduction stating the purpose, development, conclusion), closing remarks, and signature. Style (formal/informal) depends on the context and recipient.",
	},
	{
		Code: "description", Name: "description (person, object, place)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Detailed portrayal based on observation. Aim for realistic and objective descriptions. Present features in a logical order (e.g., general to specific). Include introduction, detailed body, and conclusion. Elements vary depending on whether describing a person, object, or place.",
	},
	{
		Code: "characterization", Name: "character profile",
		MinWords: 170, MaxWords: 175,
		Requirements: "Combine description with evaluation, covering both external appearance and internal qualities. Include personal details (name, age, occupation), physical appearance, distinctive character traits (both positive and negative), intellectual traits, interests, and overall assessment.",
	},
	{
		Code: "story", Name: "story / narrative",
		MinWords: 170, MaxWords: 175,
		Requirements: "Narrate a sequence of real or fictional events with a clear plot structure. Include introduction, development, and conclusion. Typically written in past tense, may include dialogue. Can be written in 1st or 3rd person. Should follow a logical sequence of events.",
	},
	{
		Code: "report", Name: "report",
		MinWords: 170, MaxWords: 175,
		Requirements: "Relate events that you participated in or witnessed (e.g., trip, concert, meeting). Describe events chronologically. Usually written in past tense. Include time, place, circumstances, purpose, course of events, and evaluation/conclusion.",
	},
	{
		Code: "review", Name: "review",
		MinWords: 170, MaxWords: 175,
		Requirements: "Express personal opinion about a film, book, performance, etc. Include introduction (identifying the subject), development (description, summary), and conclusion (subjective evaluation with justification). Focus on balanced critique with supporting evidence.",
	},
	{
		Code: "essay", Name: "essay",
		MinWords: 170, MaxWords: 175,
		Requirements: "Present a reflective and informative text developing a specific topic with your personal viewpoint. Include a clear introduction, developed arguments in the body, and a conclusion. Incorporate subjective perspectives (opinion, commentary, interpretation) supported by evidence.",
	},
})
