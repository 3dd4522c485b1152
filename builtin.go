package alltools

// Built-in tool identifiers.
const (
	ToolPDFToWord            ToolID = "pdf-to-word"
	ToolWordToPDF            ToolID = "word-to-pdf"
	ToolCompressPDF          ToolID = "compress-pdf"
	ToolMergePDF             ToolID = "merge-pdf"
	ToolSplitPDF             ToolID = "split-pdf"
	ToolCompressImage        ToolID = "compress-image"
	ToolResizeImage          ToolID = "resize-image"
	ToolConvertImage         ToolID = "convert-image"
	ToolRemoveBackground     ToolID = "remove-background"
	ToolAdjustImage          ToolID = "adjust-image"
	ToolCompoundInterest     ToolID = "compound-interest"
	ToolLoanSimulator        ToolID = "loan-simulator"
	ToolPercentageCalculator ToolID = "percentage-calculator"
	ToolBioGenerator         ToolID = "bio-generator"
	ToolHashtagGenerator     ToolID = "hashtag-generator"
	ToolCharacterCounter     ToolID = "character-counter"
	ToolQRGenerator          ToolID = "qr-generator"
	ToolPasswordGenerator    ToolID = "password-generator"
	ToolAgeCalculator        ToolID = "age-calculator"
	ToolUnitConverter        ToolID = "unit-converter"
)

// Built-in languages.
const (
	English    Language = "en"
	Portuguese Language = "pt"
	Spanish    Language = "es"
)

func slugs(en, pt, es string) map[Language]string {
	return map[Language]string{English: en, Portuguese: pt, Spanish: es}
}

// DefaultDefinition returns the definition of the AllTools site catalog.
func DefaultDefinition() Definition {
	return Definition{
		DefaultLanguage: English,
		Languages:       []Language{English, Portuguese, Spanish},
		LegalPages:      append([]LegalPage(nil), DefaultLegalPages...),
		Tools: []ToolDefinition{
			{ID: ToolPDFToWord, Slugs: slugs("pdf-to-word-converter", "converter-pdf-para-word", "convertidor-pdf-a-word")},
			{ID: ToolWordToPDF, Slugs: slugs("word-to-pdf-converter", "converter-word-para-pdf", "convertidor-word-a-pdf")},
			{ID: ToolCompressPDF, Slugs: slugs("compress-pdf", "compactar-pdf", "comprimir-pdf")},
			{ID: ToolMergePDF, Slugs: slugs("merge-pdf", "unir-pdf", "unir-pdf")},
			{ID: ToolSplitPDF, Slugs: slugs("split-pdf", "dividir-pdf", "dividir-pdf")},
			{ID: ToolCompressImage, Slugs: slugs("image-compressor", "compressor-de-imagem", "compresor-de-imagen")},
			{ID: ToolResizeImage, Slugs: slugs("resize-image", "redimensionar-imagem", "redimensionar-imagen")},
			{ID: ToolConvertImage, Slugs: slugs("convert-jpg-png", "converter-jpg-png", "convertir-jpg-png")},
			{ID: ToolRemoveBackground, Slugs: slugs("background-remover", "removedor-de-fundo", "eliminador-de-fondo")},
			{ID: ToolAdjustImage, Slugs: slugs("adjust-image", "ajustar-imagem", "ajustar-imagen")},
			{ID: ToolCompoundInterest, Slugs: slugs("compound-interest-calculator", "calculadora-de-juros-compostos", "calculadora-de-interes-compuesto")},
			{ID: ToolLoanSimulator, Slugs: slugs("loan-simulator", "simulador-de-emprestimo", "simulador-de-prestamo")},
			{ID: ToolPercentageCalculator, Slugs: slugs("percentage-calculator", "calculadora-de-porcentagem", "calculadora-de-porcentajes")},
			{ID: ToolBioGenerator, Slugs: slugs("bio-generator", "gerador-de-bio", "generador-de-bio")},
			{ID: ToolHashtagGenerator, Slugs: slugs("hashtag-generator", "gerador-de-hashtags", "generador-de-hashtags")},
			{ID: ToolCharacterCounter, Slugs: slugs("character-counter", "contador-de-caracteres", "contador-de-caracteres")},
			{ID: ToolQRGenerator, Slugs: slugs("qr-code-generator", "gerador-de-qr-code", "generador-de-codigo-qr")},
			{ID: ToolPasswordGenerator, Slugs: slugs("password-generator", "gerador-de-senha", "generador-de-contrasenas")},
			{ID: ToolAgeCalculator, Slugs: slugs("age-calculator", "calculadora-de-idade", "calculadora-de-edad")},
			{ID: ToolUnitConverter, Slugs: slugs("unit-converter", "conversor-de-medidas", "conversor-de-unidades")},
		},
		Categories: []CategoryDefinition{
			{ID: "pdf", Icon: "FileText", Tools: []ToolID{ToolPDFToWord, ToolWordToPDF, ToolCompressPDF, ToolMergePDF, ToolSplitPDF}},
			{ID: "image", Icon: "Image", Tools: []ToolID{ToolCompressImage, ToolResizeImage, ToolConvertImage, ToolRemoveBackground, ToolAdjustImage}},
			{ID: "finance", Icon: "DollarSign", Tools: []ToolID{ToolCompoundInterest, ToolLoanSimulator, ToolPercentageCalculator}},
			{ID: "social", Icon: "Share2", Tools: []ToolID{ToolBioGenerator, ToolHashtagGenerator, ToolCharacterCounter}},
			{ID: "utilities", Icon: "Wrench", Tools: []ToolID{ToolQRGenerator, ToolPasswordGenerator, ToolAgeCalculator, ToolUnitConverter}},
		},
	}
}

var defaultCatalog = MustCatalog(DefaultDefinition())

// Default returns the built-in AllTools catalog.
func Default() *Catalog {
	return defaultCatalog
}
