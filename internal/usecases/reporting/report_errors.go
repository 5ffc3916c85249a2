package reporting

import (
	"errors"
	"fmt"
)

// Nomes das etapas usados em logs, métricas e erros
const (
	StepExtractData      = "extract_data"
	StepTransformAndPlot = "transform_and_plot"
	StepSendReport       = "send_report"
)

var (
	// Erros de obtenção de dados
	ErrEmptyWindow = errors.New("nenhuma métrica encontrada na janela do relatório")

	// Erros de renderização
	ErrNonFiniteCTR = errors.New("CTR não finito (visualizações = 0)")

	// Erros de entrega
	ErrMissingPayload = errors.New("relatório sem conteúdo para envio")
)

// StepError identifica a etapa do pipeline em que a tentativa falhou
type StepError struct {
	Step string // Nome da etapa
	Err  error  // Erro base
}

// Error implementa a interface error
func (e *StepError) Error() string {
	return fmt.Sprintf("etapa %s falhou: %v", e.Step, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *StepError) Unwrap() error {
	return e.Err
}
