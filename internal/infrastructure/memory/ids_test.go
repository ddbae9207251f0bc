package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// El siguiente id es máximo + 1, no cantidad + 1: tras borrar un registro
// intermedio no se reutilizan ids.
func TestNextSeq(t *testing.T) {
	assert.Equal(t, 1, nextSeq(nil))
	assert.Equal(t, 4, nextSeq([]string{"MAT-001", "MAT-002", "MAT-003"}))
	assert.Equal(t, 8, nextSeq([]string{"MAT-001", "MAT-007"}))
	// Ids con año en el medio: cuenta el sufijo final.
	assert.Equal(t, 13, nextSeq([]string{"REQ-2025-012", "REQ-2024-003"}))
	// Basura no numérica se ignora.
	assert.Equal(t, 3, nextSeq([]string{"MAT-002", "MAT-xx"}))
}

func TestSeqID(t *testing.T) {
	assert.Equal(t, "USR-001", seqID("USR", 1))
	assert.Equal(t, "EMP-042", seqID("EMP", 42))
	assert.Equal(t, "MAT-1000", seqID("MAT", 1000))
}
