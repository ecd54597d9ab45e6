package pdf

import (
	"bytes"
	"fmt"
	"log"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"
	"casar_em_carneiros/pkg"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders an orçamento into a printable A4 PDF using absolute
// millimeter placement: cover page, itemized detail page and a closing
// thank-you page. If the full document fails to build, a condensed
// single-page summary is produced instead; only a fallback failure is
// surfaced to the caller.

const (
	empresaNome     = "Casar em Carneiros"
	empresaTagline  = "Assessoria Completa para Casamentos"
	empresaSite     = "www.casaremcarneiros.com.br"
	empresaTelefone = "(11) 98765-4321"
	empresaEmail    = "contato@casaremcarneiros.com.br"
)

// Olive-green brand color used across every page.
var corPrimaria = [3]int{46, 64, 55}

type Generator struct {
	// completo builds the full three-page document. Swappable so the
	// fallback path can be exercised deterministically.
	completo func(o entities.Orcamento) ([]byte, error)
}

var _ interfaces.IOrcamentoRenderer = (*Generator)(nil)

func NewGenerator() *Generator {
	g := &Generator{}
	g.completo = g.gerarCompleto
	return g
}

// Render produces the document bytes and the download filename. The full
// path downloads as "Orçamento_Completo_<noiva>.pdf"; the fallback path as
// "Orçamento_<noiva>.pdf", with "Casamento" standing in for a missing bride
// name.
func (g *Generator) Render(o entities.Orcamento) ([]byte, string, error) {
	content, err := renderSafely(func() ([]byte, error) { return g.completo(o) })
	if err == nil {
		return content, fmt.Sprintf("Orçamento_Completo_%s.pdf", nomeArquivo(o)), nil
	}
	log.Printf("[pdf][render] full generation failed, using fallback err=%v", err)

	content, fbErr := renderSafely(func() ([]byte, error) { return g.gerarResumo(o) })
	if fbErr != nil {
		log.Printf("[pdf][render] fallback generation failed err=%v", fbErr)
		return nil, "", fmt.Errorf("fallback render: %w", fbErr)
	}
	return content, fmt.Sprintf("Orçamento_%s.pdf", nomeArquivo(o)), nil
}

// renderSafely converts panics inside a rendering path into errors so a
// malformed record can never escape as a crash.
func renderSafely(fn func() ([]byte, error)) (content []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()
	return fn()
}

func nomeArquivo(o entities.Orcamento) string {
	if o.NomeNoiva != "" {
		return o.NomeNoiva
	}
	return "Casamento"
}

func (g *Generator) gerarCompleto(o entities.Orcamento) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	paginaCapa(doc, tr, o)

	doc.AddPage()
	paginaDetalhamento(doc, tr, o)

	doc.AddPage()
	paginaAgradecimento(doc, tr)

	return output(doc)
}

func paginaCapa(doc *gofpdf.Fpdf, tr func(string) string, o entities.Orcamento) {
	const margin = 20.0
	y := 40.0

	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin, y, tr(empresaNome))

	y += 10
	doc.SetFont("Helvetica", "", 14)
	doc.Text(margin, y, tr(empresaTagline))

	y += 30
	doc.SetFont("Helvetica", "B", 32)
	doc.Text(margin, y, tr("ORÇAMENTO"))

	y += 15
	doc.SetFont("Helvetica", "", 20)
	doc.SetTextColor(0, 0, 0)
	noiva, noivo := o.NomeNoiva, o.NomeNoivo
	if noiva == "" {
		noiva = "Noiva"
	}
	if noivo == "" {
		noivo = "Noivo"
	}
	doc.Text(margin, y, tr(fmt.Sprintf("%s & %s", noiva, noivo)))

	y += 40
	doc.SetFillColor(240, 248, 243)
	doc.Rect(margin, y, 170, 60, "F")

	y += 15
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin+10, y, tr("Data do Casamento:"))
	doc.SetFont("Helvetica", "", 14)
	doc.SetTextColor(0, 0, 0)
	doc.Text(margin+60, y, tr(pkg.FormatDateBR(o.DataCasamento)))

	y += 10
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin+10, y, tr("Nº de Convidados:"))
	doc.SetFont("Helvetica", "", 14)
	doc.SetTextColor(0, 0, 0)
	doc.Text(margin+60, y, fmt.Sprintf("%d", o.NumeroConvidados))

	y += 10
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin+10, y, "Valor Total:")
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(0, 0, 0)
	doc.Text(margin+60, y, tr(pkg.FormatCurrencyBR(o.ValorTotalConfirmado)))

	y = 250
	doc.SetDrawColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.SetLineWidth(0.5)
	doc.Line(margin, y, 190, y)

	y += 10
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.Text(margin, y, tr(fmt.Sprintf("%s | %s", empresaSite, empresaTelefone)))
	doc.Text(margin, y+5, tr(empresaEmail))
}

func paginaDetalhamento(doc *gofpdf.Fpdf, tr func(string) string, o entities.Orcamento) {
	const margin = 14.0
	y := 20.0

	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin, y, tr("DETALHAMENTO DO ORÇAMENTO"))
	y += 20

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)

	const col2 = 120.0
	doc.Text(margin, y, tr("Cliente: "+ouTraco(o.Cliente.Nome)))
	doc.Text(col2, y, tr("Email: "+ouTraco(o.Cliente.Email)))
	y += 8
	doc.Text(margin, y, tr("Telefone: "+ouTraco(o.Cliente.Telefone)))
	doc.Text(col2, y, tr("Data de Criação: "+pkg.FormatDateBR(o.CreatedAt)))
	y += 8
	doc.Text(margin, y, tr("Status: "+ouTraco(string(o.Status))))

	y += 20
	divisoria(doc, y)
	y += 15

	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin, y, tr("SERVIÇOS CONTRATADOS:"))
	y += 15

	y = tabelaServicos(doc, tr, o, margin, y)

	y += 10
	doc.SetFillColor(240, 248, 243)
	doc.Rect(margin, y, 170, 15, "F")
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin+10, y+10, tr("VALOR TOTAL: "+pkg.FormatCurrencyBR(o.ValorTotalConfirmado)))

	rodape(doc, tr)
}

// tabelaServicos draws the fixed-catalog table. Only categories with a
// description or a value get a row; the row height follows the taller of the
// wrapped name and description columns so long texts push later rows down
// instead of overlapping.
func tabelaServicos(doc *gofpdf.Fpdf, tr func(string) string, o entities.Orcamento, margin, y float64) float64 {
	doc.SetFillColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "", 12)
	doc.Rect(margin, y, 170, 8, "F")
	doc.Text(margin+2, y+6, tr("Serviço"))
	doc.Text(70, y+6, tr("Descrição"))
	doc.Text(160, y+6, "Valor")
	y += 10

	doc.SetTextColor(0, 0, 0)
	for _, entry := range entities.ServicoCatalog {
		item := o.Servicos[entry.Key]
		if item.Vazio() {
			continue
		}

		nomeLinhas := doc.SplitText(tr(entry.Nome), 50)
		for i, linha := range nomeLinhas {
			doc.Text(margin+2, y+6+float64(i)*6, linha)
		}

		descricao := item.Descricao
		if descricao == "" {
			descricao = "-"
		}
		descLinhas := doc.SplitText(tr(descricao), 70)
		for i, linha := range descLinhas {
			doc.Text(70, y+6+float64(i)*6, linha)
		}

		doc.Text(160, y+6, tr(pkg.FormatCurrencyBR(item.Valor)))

		linhas := len(nomeLinhas)
		if len(descLinhas) > linhas {
			linhas = len(descLinhas)
		}
		altura := float64(linhas) * 6

		doc.SetDrawColor(200, 200, 200)
		doc.Line(margin, y+altura+2, margin+170, y+altura+2)
		y += altura + 4
	}

	return y
}

func paginaAgradecimento(doc *gofpdf.Fpdf, tr func(string) string) {
	y := 80.0

	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	textoCentral(doc, y, tr("Muito Obrigado!"))

	y += 40
	doc.SetFont("Helvetica", "", 14)
	doc.SetTextColor(0, 0, 0)

	linhas := []string{
		"Agradecemos por fazer parte deste momento tão especial.",
		"",
		"Casar em Carneiros não é apenas uma cerimônia, é uma experiência",
		"inesquecível ao lado das pessoas que amamos.",
		"",
		"Que cada lembrança vivida aqui traga calor ao coração por toda a vida.",
		"",
		"",
		"Com carinho,",
		"Equipe Casar em Carneiros",
	}

	for _, linha := range linhas {
		switch linha {
		case "":
			y += 10
		case "Com carinho,", "Equipe Casar em Carneiros":
			doc.SetFont("Helvetica", "I", 14)
			textoCentral(doc, y, tr(linha))
			y += 12
		default:
			doc.SetFont("Helvetica", "", 14)
			textoCentral(doc, y, tr(linha))
			y += 12
		}
	}

	y += 30
	doc.SetDrawColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.SetLineWidth(1)
	doc.Line(60, y, 150, y)

	y += 20
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	textoCentral(doc, y, tr(empresaSite))
	textoCentral(doc, y+8, tr(empresaTelefone))
}

// gerarResumo is the independent fallback path: one condensed page with the
// same core fields as the full document.
func (g *Generator) gerarResumo(o entities.Orcamento) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	const margin = 14.0
	y := cabecalho(doc, tr)

	divisoria(doc, y)
	y += 12

	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin, y, tr("RESUMO DO ORÇAMENTO"))
	y += 15

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)

	const col2 = 120.0
	doc.Text(margin, y, tr("Nome da Noiva: "+ouTraco(o.NomeNoiva)))
	doc.Text(margin, y+8, tr("Nome do Noivo: "+ouTraco(o.NomeNoivo)))
	doc.Text(margin, y+16, tr("Cliente: "+ouTraco(o.Cliente.Nome)))
	doc.Text(margin, y+24, tr("Email: "+ouTraco(o.Cliente.Email)))

	doc.Text(col2, y, tr("Data de Criação: "+pkg.FormatDateBR(o.CreatedAt)))
	doc.Text(col2, y+8, tr("Data do Casamento: "+pkg.FormatDateBR(o.DataCasamento)))
	doc.Text(col2, y+16, tr(fmt.Sprintf("Nº de Convidados: %d", o.NumeroConvidados)))
	doc.Text(col2, y+24, tr("Status: "+ouTraco(string(o.Status))))

	y += 32
	divisoria(doc, y)
	y += 12

	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.Text(margin, y, tr("VALOR TOTAL: "+pkg.FormatCurrencyBR(o.ValorTotalConfirmado)))
	y += 15

	doc.Text(margin, y, tr("SERVIÇOS CONTRATADOS:"))
	y += 15

	tabelaServicos(doc, tr, o, margin, y)

	rodape(doc, tr)
	return output(doc)
}

func cabecalho(doc *gofpdf.Fpdf, tr func(string) string) float64 {
	y := 15.0
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)

	for _, linha := range []string{
		empresaNome,
		empresaTagline,
		"Rua das Flores, 123 - Jardim Primavera",
		"São Paulo/SP - CEP: 01234-567",
		"Tel: " + empresaTelefone + " | " + empresaEmail,
		empresaSite,
	} {
		doc.Text(14, y, tr(linha))
		y += 6
	}

	y += 4
	doc.SetDrawColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.SetLineWidth(0.5)
	doc.Line(14, y, 200, y)

	return y + 15
}

func rodape(doc *gofpdf.Fpdf, tr func(string) string) {
	_, altura := doc.GetPageSize()

	doc.SetDrawColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.SetLineWidth(0.5)
	doc.Line(14, altura-25, 200, altura-25)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(100, 100, 100)
	doc.Text(14, altura-20, tr(empresaNome+" - Assessoria Completa"))
	doc.Text(14, altura-15, tr(empresaSite))

	pagina := tr("Página 1 de 1")
	doc.Text(190-doc.GetStringWidth(pagina), altura-15, pagina)
}

func divisoria(doc *gofpdf.Fpdf, y float64) {
	doc.SetDrawColor(corPrimaria[0], corPrimaria[1], corPrimaria[2])
	doc.SetLineWidth(0.3)
	doc.Line(14, y, 200, y)
}

func textoCentral(doc *gofpdf.Fpdf, y float64, texto string) {
	largura, _ := doc.GetPageSize()
	doc.Text((largura-doc.GetStringWidth(texto))/2, y, texto)
}

func ouTraco(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	if doc.Err() {
		return nil, doc.Error()
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
