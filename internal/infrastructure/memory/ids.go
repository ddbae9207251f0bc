// Package memory implementa los puertos de repositorio sobre el snapshot en
// memoria (internal/infrastructure/state). Cada mutación pasa por
// AppState.Mutate, que persiste el snapshot completo al terminar.
//
// Los repositorios devuelven copias de las entidades: el snapshot solo se
// toca dentro de la sección crítica.
package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// nextSeq calcula el siguiente número de secuencia a partir del sufijo
// numérico más alto entre los ids existentes. A diferencia de contar
// elementos, sobrevive a borrados sin reutilizar ids.
func nextSeq(ids []string) int {
	max := 0
	for _, id := range ids {
		i := strings.LastIndex(id, "-")
		if i < 0 {
			continue
		}
		n, err := strconv.Atoi(id[i+1:])
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// seqID formatea un id secuencial tipo PREFIX-NNN.
func seqID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}
