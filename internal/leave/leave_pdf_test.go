package leave_test

import (
	"bytes"
	"testing"

	"go-leaveflow/internal/employee"
	"go-leaveflow/internal/leave"

	"github.com/stretchr/testify/assert"
)

func TestLayoutRows(t *testing.T) {
	assert.Empty(t, leave.LayoutRows(0))

	rows := leave.LayoutRows(80)
	assert.Equal(t, leave.RowPlacement{Page: 1, Y: 770}, rows[0])
	assert.Equal(t, leave.RowPlacement{Page: 1, Y: 50}, rows[36])
	assert.Equal(t, leave.RowPlacement{Page: 2, Y: 800}, rows[37])
	assert.Equal(t, leave.RowPlacement{Page: 2, Y: 60}, rows[74])
	assert.Equal(t, leave.RowPlacement{Page: 3, Y: 800}, rows[75])

	// exactly one full first page does not open a second one
	last := leave.LayoutRows(37)
	assert.Equal(t, 1, last[len(last)-1].Page)
}

func TestRenderApprovedPDF(t *testing.T) {
	leaves := []leave.LeaveRequest{
		{
			StartDate: date("2024-06-01"),
			EndDate:   date("2024-06-05"),
			Status:    leave.StatusHRApproved,
			Employee:  &employee.Employee{FullName: "Ana Lima", Department: "IT"},
		},
	}

	doc, err := leave.RenderApprovedPDF(leaves)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	empty, err := leave.RenderApprovedPDF(nil)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF-")))
}
