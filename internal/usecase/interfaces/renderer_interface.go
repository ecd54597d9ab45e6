package interfaces

import "casar_em_carneiros/internal/domain/entities"

// IOrcamentoRenderer abstracts the printable document generator.
//
// Render returns the document bytes plus the download filename. The renderer
// owns its own fallback: a failed full generation falls back to a condensed
// single page before an error is ever returned.
type IOrcamentoRenderer interface {
	Render(o entities.Orcamento) (content []byte, filename string, err error)
}
