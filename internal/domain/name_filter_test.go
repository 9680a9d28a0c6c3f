package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

func TestDefaultNameFilter(t *testing.T) {
	tests := []struct {
		name string
		in   m.QualifiedName
		want bool
	}{
		{"stdlib class", "kotlin.collections.List", true},
		{"top level", "kotlin.Unit", true},
		{"upper case root", "Kotlin.Unit", true},
		{"excluded marker", "kotlin.x.Foo", false},
		{"excluded marker upper case", "kotlin.X.Foo", false},
		{"marker as prefix of segment", "kotlin.xml.Foo", true},
		{"nested type", "kotlin.collections.List$Companion", false},
		{"anonymous type", "kotlin.text.Regex$1", false},
		{"other namespace", "java.util.List", false},
		{"kotlinx is outside", "kotlinx.coroutines.Job", false},
		{"root alone", "kotlin", false},
		{"root with dot only", "kotlin.", true},
	}

	filter := DefaultNameFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Accept(tt.in))
		})
	}
}

func TestNewNameFilter_CustomMarkers(t *testing.T) {
	filter := NewNameFilter("Kotlin", []string{"internal", ".jvm.", ""}, "$")

	assert.True(t, filter.Accept("kotlin.collections.List"))
	assert.True(t, filter.Accept("kotlin.x.Foo"))
	assert.False(t, filter.Accept("kotlin.internal.Foo"))
	assert.False(t, filter.Accept("kotlin.jvm.JvmStatic"))
	assert.False(t, filter.Accept("kotlin.Pair$Companion"))
}

func TestNewNameFilter_NoNestedSeparator(t *testing.T) {
	filter := NewNameFilter("kotlin", nil, "")

	assert.True(t, filter.Accept("kotlin.Pair$Companion"))
}
