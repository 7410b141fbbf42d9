package prompt

// Option is one entry of an enumerated wizard field. Key is what gets stored,
// Label is what the user picks from and Phrase is what ends up in the prompt.
type Option struct {
	Key    string `json:"value"`
	Label  string `json:"label"`
	Phrase string `json:"-"`
}

var povOptions = []Option{
	{Key: "pov-celular", Label: "POV de quem está segurando o celular", Phrase: "POV de quem está segurando o celular"},
	{Key: "terceira-pessoa", Label: "Terceira pessoa, câmera distante seguindo a pessoa", Phrase: "terceira pessoa, câmera distante seguindo a pessoa"},
	{Key: "over-shoulder", Label: "Over-the-shoulder (atrás do ombro da personagem)", Phrase: "over-the-shoulder (atrás do ombro da personagem)"},
	{Key: "primeira-pessoa", Label: "Primeira pessoa, como se fosse meus olhos", Phrase: "primeira pessoa, como se fosse meus olhos"},
	{Key: "drone-aereo", Label: "Vista aérea de drone seguindo o movimento", Phrase: "vista aérea de drone seguindo o movimento"},
	{Key: "close-up", Label: "Close-up focando nos detalhes faciais", Phrase: "close-up focando nos detalhes faciais"},
	{Key: "plano-medio", Label: "Plano médio mostrando corpo da cintura para cima", Phrase: "plano médio mostrando corpo da cintura para cima"},
	{Key: "plano-geral", Label: "Plano geral mostrando todo o cenário", Phrase: "plano geral mostrando todo o cenário"},
	{Key: "camera-baixa", Label: "Câmera baixa olhando para cima", Phrase: "câmera baixa olhando para cima"},
	{Key: "camera-alta", Label: "Câmera alta olhando para baixo", Phrase: "câmera alta olhando para baixo"},
}

var styleOptions = []Option{
	{Key: "cinematografico", Label: "Filmado em estilo cinematográfico com luz suave", Phrase: "filmado em estilo cinematográfico com luz suave"},
	{Key: "vlog-tremido", Label: "Gravação tremida como um vlog", Phrase: "gravação tremida como um vlog"},
	{Key: "vintage", Label: "Cores frias, com grão de filme e estética vintage", Phrase: "cores frias, com grão de filme e estética vintage"},
	{Key: "documentary", Label: "Estilo documental realista e natural", Phrase: "estilo documental realista e natural"},
	{Key: "noir", Label: "Film noir com contrastes dramáticos de luz e sombra", Phrase: "film noir com contrastes dramáticos de luz e sombra"},
	{Key: "golden-hour", Label: "Golden hour com luz dourada e quente", Phrase: "golden hour com luz dourada e quente"},
	{Key: "neon-cyberpunk", Label: "Iluminação neon estilo cyberpunk", Phrase: "iluminação neon estilo cyberpunk"},
	{Key: "minimalista", Label: "Composição minimalista e limpa", Phrase: "composição minimalista e limpa"},
	{Key: "handheld", Label: "Câmera na mão com movimento orgânico", Phrase: "câmera na mão com movimento orgânico"},
	{Key: "steadicam", Label: "Movimento fluido de steadicam profissional", Phrase: "movimento fluido de steadicam profissional"},
}

// Dialog languages are emitted by key, so Phrase stays empty.
var languageOptions = []Option{
	{Key: "brasilian-portuguese", Label: "Portuguese Brasil"},
	{Key: "english", Label: "English"},
	{Key: "mandarin", Label: "Mandarin Chinese"},
	{Key: "spanish", Label: "Spanish"},
	{Key: "hindi", Label: "Hindi"},
	{Key: "arabic", Label: "Arabic"},
	{Key: "portuguese", Label: "Portuguese"},
	{Key: "bengali", Label: "Bengali"},
	{Key: "russian", Label: "Russian"},
	{Key: "japanese", Label: "Japanese"},
	{Key: "punjabi", Label: "Punjabi"},
}

var (
	povPhrases   = phraseIndex(povOptions)
	stylePhrases = phraseIndex(styleOptions)
)

func phraseIndex(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[o.Key] = o.Phrase
	}
	return m
}

// PovOptions returns a copy of the point-of-view choices in display order.
func PovOptions() []Option { return append([]Option(nil), povOptions...) }

// StyleOptions returns a copy of the visual style choices in display order.
func StyleOptions() []Option { return append([]Option(nil), styleOptions...) }

// LanguageOptions returns a copy of the dialog language choices in display order.
func LanguageOptions() []Option { return append([]Option(nil), languageOptions...) }

// PovPhrase maps a point-of-view key to its descriptive phrase. Unknown keys
// are returned unchanged.
func PovPhrase(key string) string {
	if p, ok := povPhrases[key]; ok {
		return p
	}
	return key
}

// StylePhrase maps a visual style key to its descriptive phrase. Unknown keys
// are returned unchanged.
func StylePhrase(key string) string {
	if p, ok := stylePhrases[key]; ok {
		return p
	}
	return key
}
