package provider

import "strings"

// BuildPrompt composes the full generation prompt from the style label and an
// optional custom instruction. The composition rule is deliberately a single
// deterministic concatenation: a fixed base sentence naming the style, then
// " Additional instructions: <custom>" when custom is non-blank. Vendor output
// is sensitive to exact wording, so keep this stable.
func BuildPrompt(style, custom string) string {
	prompt := "Transform this child's sketch/drawing into a beautiful, detailed image " +
		"in " + style + " style. Keep the main elements and composition from the sketch " +
		"but make it look professionally rendered and polished."
	if custom = strings.TrimSpace(custom); custom != "" {
		prompt += " Additional instructions: " + custom
	}
	return prompt
}
