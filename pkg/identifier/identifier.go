// Package identifier genera los identificadores legibles de productos y eventos.
//
// Formatos: producto CT-<año>-XXXXXX (hex), evento EVT-XXXXXXXX (hex). El token se
// deriva de un digest SHA-256 truncado a pocos bytes: la unicidad es probabilística,
// NO criptográfica — bajo alto volumen de llamadas la colisión es posible. Se conserva
// la entropía reducida del diseño original en lugar de ampliarla.
package identifier

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Año fijo del prefijo de producto, heredado del formato original (CT-2024-...).
// Se podría derivar del timestamp si algún día se decide romper compatibilidad de ids.
const productYear = 2024

// NewProductID deriva el id de un producto nuevo a partir de (categoría, instante).
func NewProductID(category string, now time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", category, now.UnixNano())))
	return fmt.Sprintf("CT-%d-%06X", productYear, fold(sum[:3]))
}

// NewEventID deriva el id de un evento nuevo a partir del instante.
func NewEventID(now time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d", now.UnixNano())))
	return fmt.Sprintf("EVT-%08X", fold(sum[:4]))
}

// fold pliega los bytes del digest en un entero big-endian (acc*256 + b).
func fold(b []byte) uint32 {
	var acc uint32
	for _, x := range b {
		acc = acc*256 + uint32(x)
	}
	return acc
}
