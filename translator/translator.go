// Package translator describes the external translator page: where it
// lives and how its input control and output region are located.
package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Defaults for swifttranslator.com.
const (
	DefaultURL              = "https://www.swifttranslator.com/"
	DefaultInputPlaceholder = "Input Your Singlish Text Here."
	DefaultOutputHeading    = "Sinhala"
)

var (
	ErrInputMissing  = errors.New("input control not found")
	ErrOutputMissing = errors.New("output region not found")
)

// Target identifies the page under test. The input control is found by
// its placeholder text; the output region is the div directly after the
// panel title mentioning OutputHeading.
type Target struct {
	URL              string
	InputPlaceholder string
	OutputHeading    string
}

// Default returns the production target.
func Default() Target {
	return Target{
		URL:              DefaultURL,
		InputPlaceholder: DefaultInputPlaceholder,
		OutputHeading:    DefaultOutputHeading,
	}
}

// InputSelector is a CSS selector for the input control.
func (t Target) InputSelector() string {
	return "[placeholder=" + cssString(t.InputPlaceholder) + "]"
}

// OutputSelector is a cascadia selector for the output region.
func (t Target) OutputSelector() string {
	return "div.panel-title:contains(" + cssString(t.OutputHeading) + ") + div"
}

// OutputText parses an HTML snapshot of the page and returns the text
// content of the output region. ok is false when the region is absent.
func (t Target) OutputText(snapshot string) (text string, ok bool, err error) {
	doc, err := parse(snapshot)
	if err != nil {
		return "", false, err
	}
	sel, err := cascadia.Compile(t.OutputSelector())
	if err != nil {
		return "", false, fmt.Errorf("compiling output selector: %w", err)
	}

	out := doc.FindMatcher(sel).First()
	if out.Length() == 0 {
		return "", false, nil
	}
	return out.Text(), true, nil
}

// OutputHTML returns the markup of the output region, or "" when the
// region is absent.
func (t Target) OutputHTML(snapshot string) (string, error) {
	doc, err := parse(snapshot)
	if err != nil {
		return "", err
	}
	sel, err := cascadia.Compile(t.OutputSelector())
	if err != nil {
		return "", fmt.Errorf("compiling output selector: %w", err)
	}

	out := doc.FindMatcher(sel).First()
	if out.Length() == 0 {
		return "", nil
	}
	return goquery.OuterHtml(out)
}

// Check verifies that both locators resolve in an HTML snapshot.
func (t Target) Check(snapshot string) error {
	doc, err := parse(snapshot)
	if err != nil {
		return err
	}

	var errs []error
	for _, c := range []struct {
		selector string
		missing  error
	}{
		{t.InputSelector(), ErrInputMissing},
		{t.OutputSelector(), ErrOutputMissing},
	} {
		sel, err := cascadia.Compile(c.selector)
		if err != nil {
			errs = append(errs, fmt.Errorf("compiling %s: %w", c.selector, err))
			continue
		}
		if doc.FindMatcher(sel).Length() == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", c.missing, c.selector))
		}
	}
	return errors.Join(errs...)
}

func parse(snapshot string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(snapshot))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// cssString quotes s as a CSS string literal.
func cssString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `)
	return `"` + r.Replace(s) + `"`
}
