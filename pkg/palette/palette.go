// Package palette holds the dark-theme colour rule table for the dashboard page.
package palette

import "github.com/walteh/recolor/pkg/text"

const (
	// DefaultTarget is the file rewritten when no other path is given
	DefaultTarget = "app/dashboard/page.tsx"

	// CompletionMessage is printed to stdout after a successful rewrite
	CompletionMessage = "Color replacements complete!"
)

// 🎨 darkTheme is applied top to bottom, each rule over the output of the
// previous one. Keep the order.
var darkTheme = []text.ReplacementRule{
	// Backgrounds
	{Pattern: `bg-white\b`, Replacement: "bg-[#11141B]"},
	{Pattern: `bg-gray-50\b`, Replacement: "bg-[#1E293B]"},
	{Pattern: `bg-gray-100\b`, Replacement: "bg-[#1E293B]"},

	// Text colors
	{Pattern: `text-gray-900\b`, Replacement: "text-white"},
	{Pattern: `text-gray-800\b`, Replacement: "text-white"},
	{Pattern: `text-gray-700\b`, Replacement: "text-[#94A3B8]"},
	{Pattern: `text-gray-600\b`, Replacement: "text-[#94A3B8]"},
	{Pattern: `text-gray-500\b`, Replacement: "text-[#64748B]"},
	{Pattern: `text-gray-400\b`, Replacement: "text-[#64748B]"},
	{Pattern: `text-\[#111111\]`, Replacement: "text-white"},
	{Pattern: `text-\[#8C8C8C\]`, Replacement: "text-[#94A3B8]"},
	{Pattern: `text-black\b`, Replacement: "text-white"},

	// Borders
	{Pattern: `border-gray-200\b`, Replacement: "border-[#1E293B]"},
	{Pattern: `border-gray-300\b`, Replacement: "border-[#1E293B]"},
	{Pattern: `border-\[#E8E8E8\]`, Replacement: "border-[#1E293B]"},

	// Brand colors
	{Pattern: `from-\[#A26BFF\]`, Replacement: "from-[#5B8CFF]"},
	{Pattern: `to-\[#8E56EF\]`, Replacement: "to-[#4A7AE8]"},
	{Pattern: `bg-\[#A26BFF\]`, Replacement: "bg-[#5B8CFF]"},
	{Pattern: `text-\[#A26BFF\]`, Replacement: "text-[#5B8CFF]"},
	{Pattern: `border-\[#A26BFF\]`, Replacement: "border-[#5B8CFF]"},
	{Pattern: `hover:bg-\[#8E56EF\]`, Replacement: "hover:bg-[#4A7AE8]"},
	{Pattern: `hover:text-\[#8E56EF\]`, Replacement: "hover:text-[#4A7AE8]"},
	{Pattern: `hover:from-\[#8E56EF\]`, Replacement: "hover:from-[#4A7AE8]"},
	{Pattern: `hover:to-\[#7D4FDE\]`, Replacement: "hover:to-[#4A7AE8]"},
	{Pattern: `hover:to-\[#7D45DE\]`, Replacement: "hover:to-[#4A7AE8]"},

	// Border radius, buttons only
	{Pattern: `rounded-full text-base`, Replacement: "rounded-2xl text-base"},
	{Pattern: `rounded-full text-lg`, Replacement: "rounded-2xl text-lg"},
	{Pattern: `rounded-full font-bold`, Replacement: "rounded-2xl font-bold"},
	{Pattern: `rounded-3xl`, Replacement: "rounded-2xl"},

	// Hover states
	{Pattern: `hover:bg-gray-50\b`, Replacement: "hover:bg-[#1E293B]"},
	{Pattern: `hover:bg-gray-100\b`, Replacement: "hover:bg-[#1E293B]"},
	{Pattern: `hover:border-gray-300`, Replacement: "hover:border-[#1E293B]"},
	{Pattern: `hover:border-gray-400`, Replacement: "hover:border-[#1E293B]"},
}

// DarkThemeRules returns a copy of the rule table in application order
func DarkThemeRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, len(darkTheme))
	copy(rules, darkTheme)
	return rules
}
