package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leaveflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		query     string
		want      []int
		wantPages int
	}{
		{name: "defaults", query: "", want: []int{1, 2, 3, 4, 5}, wantPages: 1},
		{name: "second page", query: "?page=2&page_size=2", want: []int{3, 4}, wantPages: 3},
		{name: "past the end", query: "?page=9&page_size=2", want: []int{}, wantPages: 3},
		{name: "garbage falls back", query: "?page=x&page_size=-1", want: []int{1, 2, 3, 4, 5}, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/x"+tt.query, nil)

			got, meta := response.Paginate(c, items)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(5), meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}
