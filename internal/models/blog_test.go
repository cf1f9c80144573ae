package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlogSetValues(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		blogName string
		url      string
		email    string
		want     Blog
	}{
		{
			name: "all fields replaced",
			id:   9999999999, blogName: "Long Journey", url: "long_journey", email: "long.journey@gmail.com",
			want: Blog{ID: 9999999999, Name: "Long Journey", URL: "long_journey", Email: "long.journey@gmail.com"},
		},
		{
			name: "zero id keeps old id",
			id:   0, blogName: "Long Journey", url: "long_journey", email: "long.journey@gmail.com",
			want: Blog{ID: 1111114444, Name: "Long Journey", URL: "long_journey", Email: "long.journey@gmail.com"},
		},
		{
			name: "empty strings keep old values",
			id:   9999999999, blogName: "", url: "", email: "",
			want: Blog{ID: 9999999999, Name: "Short Journey", URL: "short_journey", Email: "short.journey@gmail.com"},
		},
		{
			name: "partial update",
			id:   0, blogName: "Short Travel", url: "", email: "",
			want: Blog{ID: 1111114444, Name: "Short Travel", URL: "short_journey", Email: "short.journey@gmail.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Blog{ID: 1111114444, Name: "Short Journey", URL: "short_journey", Email: "short.journey@gmail.com", PostCounter: 7}
			b.SetValues(tt.id, tt.blogName, tt.url, tt.email)

			tt.want.PostCounter = 7
			assert.Equal(t, tt.want, b)
		})
	}
}
