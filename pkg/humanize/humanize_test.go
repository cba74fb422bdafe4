package humanize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tv-frame/pkg/humanize"
)

func TestMs_Units(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0毫秒"},
		{500, "500毫秒"},
		{999, "999毫秒"},
		{1000, "1秒"},
		{1999, "1秒"},
		{30000, "30秒"},
		{59999, "59秒"},
		{60000, "1分钟"},
		{90000, "1分钟"},
		{3599999, "59分钟"},
		{3600000, "1小时"},
		{7200000, "2小时"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanize.Ms(tt.ms), "Ms(%d)", tt.ms)
	}
}

func TestMs_Negative(t *testing.T) {
	assert.Equal(t, "0毫秒", humanize.Ms(-1))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "45秒", humanize.Duration(45*time.Second))
	assert.Equal(t, "1分钟", humanize.Duration(time.Minute))
}
