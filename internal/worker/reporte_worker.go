package worker

// reporte_worker.go
// Builds the PDF report of a corte and hands it to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"cajacentral/internal/infra"
	"cajacentral/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReporteJobPayload is the job envelope sent to QueueReporte.
type ReporteJobPayload struct {
	CorteID uint   `json:"corte_id"`
	Email   string `json:"email"`
}

type ReporteWorker struct {
	cortes      repository.CorteRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewReporteWorker(cortes repository.CorteRepository, dispatcher *Dispatcher, storagePath string) *ReporteWorker {
	return &ReporteWorker{cortes: cortes, dispatcher: dispatcher, storagePath: storagePath}
}

// Process generates the PDF for the corte and enqueues the email job. A
// returned error triggers retry and eventually the DLQ.
func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}

	corte, err := w.cortes.FindByID(ctx, payload.CorteID)
	if err != nil {
		return fmt.Errorf("reporte_worker: corte %d: %w", payload.CorteID, err)
	}

	pdfPath, err := infra.GenerateCortePDF(corte, w.storagePath)
	if err != nil {
		return fmt.Errorf("reporte_worker: %w", err)
	}

	subject := fmt.Sprintf("Corte de caja #%d — %s", corte.ID, corte.Fecha.Format("02/01/2006"))
	body := fmt.Sprintf(
		"Se adjunta el reporte del corte #%d.\n\nEfectivo esperado: $%s\nEfectivo real: $%s\nDiferencia: $%s\n",
		corte.ID,
		corte.EfectivoEsperado.StringFixed(2),
		corte.EfectivoReal.StringFixed(2),
		corte.Diferencia.StringFixed(2),
	)
	if err := w.dispatcher.EncolarEmail(ctx, EmailJobPayload{
		ToEmail: payload.Email,
		Subject: subject,
		Body:    body,
		PDFPath: pdfPath,
	}); err != nil {
		return fmt.Errorf("reporte_worker: enqueue email: %w", err)
	}

	log.Info().Uint("corte_id", corte.ID).Str("pdf", pdfPath).Msg("reporte_worker: PDF generated")
	return nil
}
