package palette

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/recolor/pkg/text"
)

const dashboardFixture = `export default function Dashboard() {
  return (
    <div className="min-h-screen bg-gray-50">
      <header className="bg-white border-b border-gray-200">
        <h1 className="text-2xl font-bold text-gray-900">Dashboard</h1>
        <p className="text-gray-500">Welcome back</p>
      </header>
      <section className="bg-white rounded-3xl border border-[#E8E8E8] p-6">
        <h2 className="text-[#111111]">Usage</h2>
        <span className="text-[#8C8C8C] text-black">0 credits</span>
        <button className="bg-gradient-to-r from-[#A26BFF] to-[#8E56EF] hover:from-[#8E56EF] hover:to-[#7D4FDE] rounded-full text-base">Upgrade</button>
        <a className="text-[#A26BFF] hover:text-[#8E56EF] hover:bg-gray-100">Docs</a>
        <button className="bg-[#A26BFF] hover:bg-[#8E56EF] rounded-full font-bold">Go</button>
        <div className="border-2 border-[#A26BFF] hover:border-gray-300 rounded-full">avatar</div>
      </section>
    </div>
  )
}
`

const dashboardExpected = `export default function Dashboard() {
  return (
    <div className="min-h-screen bg-[#1E293B]">
      <header className="bg-[#11141B] border-b border-[#1E293B]">
        <h1 className="text-2xl font-bold text-white">Dashboard</h1>
        <p className="text-[#64748B]">Welcome back</p>
      </header>
      <section className="bg-[#11141B] rounded-2xl border border-[#1E293B] p-6">
        <h2 className="text-white">Usage</h2>
        <span className="text-[#94A3B8] text-white">0 credits</span>
        <button className="bg-gradient-to-r from-[#5B8CFF] to-[#4A7AE8] hover:from-[#4A7AE8] hover:to-[#4A7AE8] rounded-2xl text-base">Upgrade</button>
        <a className="text-[#5B8CFF] hover:text-[#4A7AE8] hover:bg-[#1E293B]">Docs</a>
        <button className="bg-[#5B8CFF] hover:bg-[#4A7AE8] rounded-2xl font-bold">Go</button>
        <div className="border-2 border-[#5B8CFF] hover:border-[#1E293B] rounded-full">avatar</div>
      </section>
    </div>
  )
}
`

func TestDarkThemeRules_Valid(t *testing.T) {
	rules := DarkThemeRules()
	require.Len(t, rules, 33)
	require.NoError(t, text.NewRegexTextReplacer().ValidateRules(rules))
}

func TestDarkThemeRules_ReturnsCopy(t *testing.T) {
	rules := DarkThemeRules()
	rules[0].Replacement = "changed"

	assert.Equal(t, "bg-[#11141B]", DarkThemeRules()[0].Replacement)
}

func TestDarkThemeRules_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bg_white", content: "bg-white", want: "bg-[#11141B]"},
		{name: "bg_white_prefixed", content: "xbg-white", want: "xbg-[#11141B]"},
		{name: "bg_white_extended", content: "bg-whitesmoke", want: "bg-whitesmoke"},
		{name: "rounded_full_text_base", content: "rounded-full text-base", want: "rounded-2xl text-base"},
		{name: "rounded_3xl", content: "rounded-3xl", want: "rounded-2xl"},
		{name: "rounded_full_alone", content: "rounded-full", want: "rounded-full"},
		{name: "gray_50_not_500", content: "bg-gray-500", want: "bg-gray-500"},
		{name: "text_gray_400", content: "text-gray-400", want: "text-[#64748B]"},
		{name: "hover_to_variants", content: "hover:to-[#7D4FDE] hover:to-[#7D45DE]", want: "hover:to-[#4A7AE8] hover:to-[#4A7AE8]"},
		{name: "hex_case_sensitive", content: "text-[#a26bff]", want: "text-[#a26bff]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := text.Apply(tt.content, DarkThemeRules())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDarkThemeRules_Dashboard(t *testing.T) {
	result, err := text.NewRegexTextReplacer().ReplaceText(context.Background(), strings.NewReader(dashboardFixture), DarkThemeRules())
	require.NoError(t, err)

	assert.Equal(t, dashboardExpected, string(result.ModifiedContent))
	assert.True(t, result.WasModified)
}

func TestDarkThemeRules_Deterministic(t *testing.T) {
	first, err := text.Apply(dashboardFixture, DarkThemeRules())
	require.NoError(t, err)
	second, err := text.Apply(dashboardFixture, DarkThemeRules())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDarkThemeRules_FixedPoint(t *testing.T) {
	once, err := text.Apply(dashboardFixture, DarkThemeRules())
	require.NoError(t, err)

	result, err := text.NewRegexTextReplacer().ReplaceText(context.Background(), strings.NewReader(once), DarkThemeRules())
	require.NoError(t, err)

	assert.False(t, result.WasModified, "a second pass should not change the output")
	assert.Equal(t, 0, result.ReplacementCount)
}

func TestDarkThemeRules_HoverShadowedByEarlierRules(t *testing.T) {
	rules := DarkThemeRules()
	result, err := text.NewRegexTextReplacer().ReplaceText(context.Background(), strings.NewReader("hover:bg-gray-50 hover:border-gray-300"), rules)
	require.NoError(t, err)

	assert.Equal(t, "hover:bg-[#1E293B] hover:border-[#1E293B]", string(result.ModifiedContent))

	// the plain background and border rules run first and consume these tokens
	byPattern := map[string]int{}
	for i, rule := range rules {
		byPattern[rule.Pattern] = result.RuleCounts[i]
	}
	assert.Equal(t, 1, byPattern[`bg-gray-50\b`])
	assert.Equal(t, 1, byPattern[`border-gray-300\b`])
	assert.Equal(t, 0, byPattern[`hover:bg-gray-50\b`])
	assert.Equal(t, 0, byPattern[`hover:border-gray-300`])
}

func TestDarkThemeRules_OrderMatters(t *testing.T) {
	countsByPattern := func(rules []text.ReplacementRule) map[string]int {
		result, err := text.NewRegexTextReplacer().ReplaceText(context.Background(), strings.NewReader("hover:bg-gray-50"), rules)
		require.NoError(t, err)
		assert.Equal(t, "hover:bg-[#1E293B]", string(result.ModifiedContent))

		counts := map[string]int{}
		for i, rule := range rules {
			counts[rule.Pattern] = result.RuleCounts[i]
		}
		return counts
	}

	// move the hover rule ahead of the generic background rule it overlaps
	swapped := DarkThemeRules()
	var bgIdx, hoverIdx int
	for i, rule := range swapped {
		switch rule.Pattern {
		case `bg-gray-50\b`:
			bgIdx = i
		case `hover:bg-gray-50\b`:
			hoverIdx = i
		}
	}
	require.Less(t, bgIdx, hoverIdx)
	swapped[bgIdx], swapped[hoverIdx] = swapped[hoverIdx], swapped[bgIdx]

	inOrder := countsByPattern(DarkThemeRules())
	reordered := countsByPattern(swapped)

	// same text either way, but a different rule does the work
	assert.Equal(t, 1, inOrder[`bg-gray-50\b`])
	assert.Equal(t, 0, inOrder[`hover:bg-gray-50\b`])
	assert.Equal(t, 0, reordered[`bg-gray-50\b`])
	assert.Equal(t, 1, reordered[`hover:bg-gray-50\b`])
}
