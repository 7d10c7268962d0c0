package languages

// Portuguese exercise catalog. Requirements are kept in Portuguese so
// the grading prompt matches the target language register.
var Portuguese = newCatalog("portuguese", "Portuguese", []Definition{
	{
		Code: "wishes", Name: "votos / felicitações (wishes)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Incluir local e data, destinatário (opcional em estilo neutro), conteúdo principal especificando a ocasião e texto ajustado a ela, assinatura. Usar saudações formais e nome completo para votos/felicitações oficiais, saudações informais e primeiro nome para privados.",
	},
	{
		Code: "greetings", Name: "saudações (greetings)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Incluir local e data, destinatário (opcional em estilo neutro), conteúdo principal, assinatura. Usar saudações formais e nome completo para saudações oficiais, saudações informais e primeiro nome para saudações privadas. Frequentemente enviado em postais.",
	},
	{
		Code: "invitation", Name: "convite (invitation)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Especificar quem convida quem, a ocasião, e onde/quando o evento ocorre. Pode incluir informações sobre o código de vestimenta e pedido de RSVP. Usar saudações formais e nome completo para convites oficiais, saudações informais e primeiro nome para convites privados.",
	},
	{
		Code: "notice", Name: "aviso / comunicado (notice)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Texto informativo sobre um evento que aconteceu ou vai acontecer. O conteúdo varia com base na natureza oficial/privada, remetente/destinatário e tipo de evento. Deve incluir local e data, o quê/onde/quando, e quem está a notificar/comunicar.",
	},
	{
		Code: "announcement", Name: "anúncio (announcement)",
		MinWords: 25, MaxWords: 30,
		Requirements: "Texto informativo, frequentemente sobre venda, troca, aluguer, ofertas de emprego, itens perdidos/achados. Deve ser conciso. Deve incluir quem anuncia, o propósito (vender, comprar, etc.), o assunto (emprego, carro, animal de estimação, etc.) e informações de contacto.",
	},
	{
		Code: "letter", Name: "carta (letter)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Incluir local e data (canto superior direito), saudação ao destinatário, conteúdo principal (introdução declarando o propósito, desenvolvimento, conclusão), saudações de despedida e assinatura. O estilo (formal/informal) depende do contexto.",
	},
	{
		Code: "description", Name: "descrição (description)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Retrato detalhado baseado na observação. Deve ser realista e objetivo. Descrever características numa ordem específica (ex: do geral para o específico). Inclui introdução, desenvolvimento e conclusão. Elementos específicos variam para pessoa, objeto ou lugar.",
	},
	{
		Code: "characterization", Name: "caracterização de pessoa (characterization)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Descrição combinada com avaliação, cobrindo aspetos externos e internos. Incluir dados pessoais (nome, idade, profissão), aparência, traços de caráter distintos (positivos/negativos), traços intelectuais, interesses e avaliação geral.",
	},
	{
		Code: "story", Name: "narração / história (story)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Narra uma sequência de eventos reais ou fictícios. Consiste em introdução, desenvolvimento e conclusão. Geralmente escrito no pretérito, pode incluir diálogo. Pode ser contado na 1ª ou 3ª pessoa. Deve seguir uma sequência lógica de eventos.",
	},
	{
		Code: "report", Name: "relato / relatório (report)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Relata eventos nos quais o escritor participou ou testemunhou (ex: viagem, concerto). Descreve os eventos cronologicamente. Geralmente escrito no pretérito. Deve incluir tempo, lugar, circunstâncias, propósito, curso dos eventos e avaliação.",
	},
	{
		Code: "review", Name: "crítica / resenha (review)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Expressa opinião pessoal sobre um filme, livro, espetáculo, etc. Consiste em introdução (identificando o objeto), desenvolvimento (elementos de descrição, resumo, relato) e conclusão (avaliação subjetiva com justificação). Foco na opinião pessoal.",
	},
	{
		Code: "essay", Name: "ensaio / redação (essay)",
		MinWords: 170, MaxWords: 175,
		Requirements: "Escrita reflexivo-informativa que desenvolve e explica um tópico com as opiniões do escritor. Precisa de introdução, desenvolvimento, conclusão. Deve incluir visões subjetivas (opinião, comentário, interpretação, sentimentos) e argumentos de apoio.",
	},
})
