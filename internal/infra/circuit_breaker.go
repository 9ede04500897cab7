package infra

// Corta el paso al relay SMTP cuando acumula fallos consecutivos: los envíos
// fallan de inmediato en vez de colgar el pool esperando timeouts, y tras la
// pausa configurada se deja pasar tráfico de prueba para detectar la
// recuperación del relay.

import (
	"errors"
	"sync"
	"time"
)

// EstadoCircuito es el estado visible del breaker.
type EstadoCircuito int

const (
	CircuitoCerrado  EstadoCircuito = iota // operación normal
	CircuitoAbierto                        // rechaza todo hasta cumplir la pausa
	CircuitoEnPrueba                       // deja pasar envíos para sondear el relay
)

func (e EstadoCircuito) String() string {
	switch e {
	case CircuitoCerrado:
		return "cerrado"
	case CircuitoAbierto:
		return "abierto"
	case CircuitoEnPrueba:
		return "en_prueba"
	}
	return "desconocido"
}

// ErrCircuitoAbierto se regresa sin ejecutar nada mientras el circuito
// sigue abierto.
var ErrCircuitoAbierto = errors.New("circuito abierto: operación rechazada")

type CircuitBreaker struct {
	mu           sync.Mutex
	estado       EstadoCircuito
	fallos       int
	exitos       int
	ultimoFallo  time.Time
	umbralFallos int
	umbralExitos int
	pausa        time.Duration
}

// NewCircuitBreaker arma un breaker cerrado. Umbrales no positivos caen a
// 5 fallos para abrir, 2 éxitos para cerrar y una pausa de 60s.
func NewCircuitBreaker(umbralFallos, umbralExitos int, pausa time.Duration) *CircuitBreaker {
	if umbralFallos <= 0 {
		umbralFallos = 5
	}
	if umbralExitos <= 0 {
		umbralExitos = 2
	}
	if pausa <= 0 {
		pausa = 60 * time.Second
	}
	return &CircuitBreaker{umbralFallos: umbralFallos, umbralExitos: umbralExitos, pausa: pausa}
}

// Estado reporta el estado actual, promoviendo abierto → en prueba cuando la
// pausa ya corrió.
func (cb *CircuitBreaker) Estado() EstadoCircuito {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.estadoActual()
}

func (cb *CircuitBreaker) estadoActual() EstadoCircuito {
	if cb.estado == CircuitoAbierto && time.Since(cb.ultimoFallo) >= cb.pausa {
		cb.estado = CircuitoEnPrueba
		cb.exitos = 0
	}
	return cb.estado
}

// Execute corre fn salvo que el circuito esté abierto, y registra el
// resultado para decidir las transiciones.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	if cb.estadoActual() == CircuitoAbierto {
		cb.mu.Unlock()
		return ErrCircuitoAbierto
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.registrarFallo()
		return err
	}
	cb.registrarExito()
	return nil
}

func (cb *CircuitBreaker) registrarFallo() {
	cb.fallos++
	cb.ultimoFallo = time.Now()
	switch cb.estado {
	case CircuitoCerrado:
		if cb.fallos >= cb.umbralFallos {
			cb.estado = CircuitoAbierto
			cb.exitos = 0
		}
	case CircuitoEnPrueba:
		// La prueba falló: otra ronda de pausa completa.
		cb.estado = CircuitoAbierto
		cb.fallos = 0
	}
}

func (cb *CircuitBreaker) registrarExito() {
	switch cb.estado {
	case CircuitoCerrado:
		cb.fallos = 0
	case CircuitoEnPrueba:
		cb.exitos++
		if cb.exitos >= cb.umbralExitos {
			cb.estado = CircuitoCerrado
			cb.fallos = 0
			cb.exitos = 0
		}
	}
}
