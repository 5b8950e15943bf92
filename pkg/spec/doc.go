// Package spec is a small behavior-specification runner. Specs read close
// to English:
//
//	spec.Describe("The DeepThought component").Run(func(it *spec.Feature) {
//		it.It("answers correctly", func(then *spec.Case) {
//			x := NewDeepThought()
//			then.Then(x.Answer()).Should().Be(42)
//		})
//	})
//	spec.Done()
//
// Describe returns a Feature. Invoking a Feature with Case yields a Case,
// and invoking a Case with Then wraps a subject in a Target. Should and
// ShouldNot return a fresh Target (plain or negated) on which exactly one
// assertion is evaluated and reported to the Sink.
//
// Supported assertions after Should / ShouldNot:
//
//	Assertion                   Subject requirements
//	------------------------------------------------
//	Be(v)
//	BeLessThan(v)               number or string
//	BeLessOrEqual(v)            number or string
//	BeGreaterThan(v)            number or string
//	BeGreaterOrEqual(v)         number or string
//	Hold()
//	Have(name)                  struct, pointer or string-keyed map
//	Contain(element)            string, slice, array or map
//	Match(pattern)              string, []byte or fmt.Stringer
//	Throw(kind)                 func with no arguments
//
// Done prints the final results and exits with the number of failed
// assertions. Done(WithoutExit()) returns the count instead.
//
// Counters live in the Sink and are not synchronised: a run is a single
// sequential pass.
package spec
