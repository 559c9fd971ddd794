// Package classcombo finds repeated combinations of CSS classes in HTML files.
//
// Every element with a class attribute contributes its class set: the
// order-independent, duplicate-free set of its class tokens, so
// class="btn btn--primary" and class="btn--primary  btn" are the same
// combination. Combinations of at least two classes that occur at least twice
// anywhere under the scanned directory are reported with every location.
//
// # Analysis
//
//	result, err := classcombo.Analyze(classcombo.Config{
//		Root:    "web/templates",
//		Exclude: []string{"vendor/**"},
//	})
//	for _, entry := range result.Combinations.Pairs() {
//		fmt.Println(entry.Set, entry.Count())
//	}
//
// # Output
//
// WriteOutput renders a result as text, summary, full, json or markdown,
// sorted by occurrence count or by combination size.
//
// # CLI Tool
//
//	go install github.com/yacobolo/classcombo/cmd/classcombo@latest
//	classcombo analyze ./web --sort-by classes
package classcombo
