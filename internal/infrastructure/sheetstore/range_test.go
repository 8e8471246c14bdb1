package sheetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndexToLabel(t *testing.T) {
	cases := map[int]string{
		1:   "A",
		8:   "H",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}
	for n, want := range cases {
		assert.Equal(t, want, ColumnIndexToLabel(n), "index %d", n)
		assert.Equal(t, n, ColumnLabelToIndex(want), "label %s", want)
	}
	assert.Equal(t, "", ColumnIndexToLabel(0))
	assert.Equal(t, 0, ColumnLabelToIndex("A1"))
	assert.Equal(t, 28, ColumnLabelToIndex("ab"))
}

func TestParseA1Range(t *testing.T) {
	r, err := ParseA1Range("Customers!A:Z")
	require.NoError(t, err)
	assert.Equal(t, A1Range{Sheet: "Customers", StartCol: 1, EndCol: 26}, r)

	r, err = ParseA1Range("Orders!A3:K3")
	require.NoError(t, err)
	assert.Equal(t, A1Range{Sheet: "Orders", StartCol: 1, StartRow: 3, EndCol: 11, EndRow: 3}, r)
	assert.Equal(t, "Orders!A3:K3", r.String())

	r, err = ParseA1Range("'Order Items'!B5")
	require.NoError(t, err)
	assert.Equal(t, A1Range{Sheet: "Order Items", StartCol: 2, StartRow: 5, EndCol: 2, EndRow: 5}, r)

	r, err = ParseA1Range("'Q1!Plan''s'!A1:C2")
	require.NoError(t, err)
	assert.Equal(t, A1Range{Sheet: "Q1!Plan's", StartCol: 1, StartRow: 1, EndCol: 3, EndRow: 2}, r)

	for _, bad := range []string{"A1:B2", "Sheet!", "Sheet!1:2", "Sheet!B1:A1", "Sheet!A0", "'Open!A1", "'Bad'A1"} {
		_, err := ParseA1Range(bad)
		assert.Error(t, err, bad)
	}
}

func TestA1RangeQuotesSheetNames(t *testing.T) {
	cases := map[string]string{
		"Customers":    "Customers!A:Z",
		"Order_Items":  "Order_Items!A:Z",
		"Order Items":  "'Order Items'!A:Z",
		"Q1!Plan":      "'Q1!Plan'!A:Z",
		"Owner's List": "'Owner''s List'!A:Z",
	}
	for sheet, want := range cases {
		got := columnsRange(sheet)
		assert.Equal(t, want, got)

		back, err := ParseA1Range(got)
		require.NoError(t, err, got)
		assert.Equal(t, sheet, back.Sheet)
	}
	assert.Equal(t, "'Order Items'!A3:F3", rowRange("Order Items", 1, 6))
}

func TestRangeBuilders(t *testing.T) {
	assert.Equal(t, "Customers!A:Z", columnsRange("Customers"))
	assert.Equal(t, "Customers!A1:Z1", headerRange("Customers"))
	// third data row of an 8-column sheet
	assert.Equal(t, "Customers!A4:H4", rowRange("Customers", 2, 8))
	assert.Equal(t, "Orders!A2:K2", rowRange("Orders", 0, 11))
}
