package bizkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_IncrementsAndPads(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		last string
		want string
	}{
		{name: "return mid-sequence", typ: Return, last: "RID000042", want: "RID000043"},
		{name: "order first follow-up", typ: Order, last: "OD001", want: "OD002"},
		{name: "payment wide suffix", typ: Payment, last: "PID00000009", want: "PID00000010"},
		{name: "empty last yields first", typ: Return, last: "", want: "RID000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Next(tt.last))
		})
	}
}

func TestNext_SequentialIssuanceHasNoGaps(t *testing.T) {
	last := ""
	for i := 1; i <= 12; i++ {
		last = Return.Next(last)
	}

	assert.Equal(t, "RID000012", last)
}

func TestNext_UnparseableLastFailsOpen(t *testing.T) {
	// A malformed predecessor must never fail the create; the suffix is
	// treated as 0 before incrementing.
	tests := []struct {
		name string
		last string
	}{
		{name: "wrong prefix", last: "XYZ000042"},
		{name: "no digits", last: "RID"},
		{name: "non-numeric suffix", last: "RIDabc123"},
		{name: "negative suffix", last: "RID-00001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "RID000001", Return.Next(tt.last))
		})
	}
}

func TestNext_OverflowWidensWithoutWrapping(t *testing.T) {
	next := Order.Next("OD999")
	require.Equal(t, "OD1000", next)

	// The widened key keeps incrementing normally.
	assert.Equal(t, "OD1001", Order.Next(next))
}

func TestFormat_PadsToWidth(t *testing.T) {
	assert.Equal(t, "PID00000001", Payment.Format(1))
	assert.Equal(t, "OD007", Order.Format(7))
	assert.Equal(t, "RID1000000", Return.Format(1000000))
}

func TestValid(t *testing.T) {
	assert.True(t, Return.Valid("RID000001"))
	assert.True(t, Return.Valid("RID1000000"))
	assert.False(t, Return.Valid("RID1"))
	assert.False(t, Return.Valid("OD0000001"))
	assert.False(t, Return.Valid("RIDxxxxxx"))
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, uint64(42), Return.Suffix("RID000042"))
	assert.Equal(t, uint64(0), Return.Suffix("bogus"))
}
