package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"

	polarityThreshold = 0.20
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")
	return strings.Join(strings.Fields(input), " ")
}

// ConvertMarkdownToText renders markdown and strips the resulting markup.
func ConvertMarkdownToText(input string) string {
	// Renderers keep state, so each call gets its own. Smartypants is left off
	// because VADER does not know the entities it produces.
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(renderer))
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return RemoveLinks(plainText)
}

// AnalyzePolarity scores text locally with VADER and returns the compound
// score with its label.
func AnalyzePolarity(text string) (float64, string) {
	plainText := ConvertMarkdownToText(text)

	score := analyzer.PolarityScores(plainText).Compound

	var label string
	if score >= polarityThreshold {
		label = LabelPositive
	} else if score <= -polarityThreshold {
		label = LabelNegative
	} else {
		label = LabelNeutral
	}

	return score, label
}
