package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGradient_PreservesText(t *testing.T) {
	tests := []string{"", "L", "Lofi", "Deep House", "ラジオ"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			out := Gradient(text, true, T().Primary, T().Secondary)
			assert.Equal(t, lipgloss.Width(text), lipgloss.Width(out))
		})
	}
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))

	assert.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[4].Hex())
}

func TestBlend_SingleColor(t *testing.T) {
	colors := blend(1, lipgloss.Color("#a78bfa"), lipgloss.Color("#f1a208"))

	assert.Len(t, colors, 1)
	assert.Equal(t, "#a78bfa", colors[0].Hex())
}

func TestToColorful_AnsiFallsBackToGrey(t *testing.T) {
	c := toColorful(lipgloss.Color("240"))

	r, g, b := c.RGB255()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestIndicatorColor(t *testing.T) {
	th := T()

	assert.Equal(t, th.Live, th.IndicatorColor("live"))
	assert.Equal(t, th.Buffering, th.IndicatorColor("buffering"))
	assert.Equal(t, th.Error, th.IndicatorColor("error"))
	assert.Equal(t, th.Ready, th.IndicatorColor("ready"))
	assert.Equal(t, th.Ready, th.IndicatorColor("unknown"))
}
