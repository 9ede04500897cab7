package worker

// Cola de muertos: un trabajo que agota sus reintentos se aparta a una lista
// dlq:{cola origen} en Redis, con el motivo del último fallo, para revisión
// manual. Nada la drena automáticamente.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqPrefix = "dlq:"

// TrabajoMuerto es lo que queda de un job tras agotar los reintentos.
type TrabajoMuerto struct {
	ColaOrigen string          `json:"cola_origen"`
	Tipo       string          `json:"tipo"`
	Payload    json.RawMessage `json:"payload"`
	Motivo     string          `json:"motivo"`
	Intentos   int             `json:"intentos"`
	FalloEn    time.Time       `json:"fallo_en"`
}

func moverADLQ(ctx context.Context, rdb *redis.Client, cola, tipo string, payload json.RawMessage, motivo string, intentos int) {
	muerto := TrabajoMuerto{
		ColaOrigen: cola,
		Tipo:       tipo,
		Payload:    payload,
		Motivo:     motivo,
		Intentos:   intentos,
		FalloEn:    time.Now().UTC(),
	}
	data, err := json.Marshal(muerto)
	if err != nil {
		log.Error().Err(err).Str("cola", cola).Msg("dlq: entrada no serializable")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+cola, data).Err(); err != nil {
		log.Error().Err(err).Str("cola", cola).Msg("dlq: no se pudo apartar el trabajo")
		return
	}
	log.Warn().
		Str("cola", cola).
		Str("tipo", tipo).
		Str("motivo", motivo).
		Int("intentos", intentos).
		Msg("dlq: trabajo apartado tras agotar reintentos")
}

// LongitudDLQ reporta el rezago de una cola de muertos; /health lo expone
// para que el rezago se note antes de que alguien pregunte por su reporte.
func LongitudDLQ(ctx context.Context, rdb *redis.Client, cola string) (int64, error) {
	return rdb.LLen(ctx, dlqPrefix+cola).Result()
}
