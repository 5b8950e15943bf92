// Package selfspec specifies the spec runner using itself.
//
// The outer features report to the default sink. The features, cases and
// targets under test report to a report.Recorder so that their outcomes do
// not interfere with the run that checks them.
package selfspec

import (
	"errors"
	"io"
	"io/fs"
	"strconv"

	"github.com/fjglira/GoSpecRunner/internal/report"
	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

var errValue = errors.New("value error")

func epicFail() {
	panic(errValue)
}

func parseAnswer() error {
	_, err := strconv.Atoi("forty-two")
	return err
}

// Suite declares and runs the self-specification.
func Suite() {
	result := report.NewRecorder()

	var (
		desc   *spec.Feature
		kase   *spec.Case
		target *spec.Target
	)

	spec.Describe("A Feature").Run(func(it *spec.Feature) {
		it.It("is obtained by calling Describe", func(then *spec.Case) {
			desc = spec.Describe("a feature", spec.WithSink(result))
			then.Then(desc.What()).Should().Be("a feature")
		})

		it.It("is a scope", func(then *spec.Case) {
			then.Then(desc).Should().Have("Enter")
			then.Then(desc).Should().Have("Exit")
			then.Then(desc).Should().Have("Run")
		})

		it.It("reports entering its scope", func(then *spec.Case) {
			desc.Enter()
			defer desc.Exit()
			then.Then(result.EnteredFeature).Should().Be(desc)
		})

		it.It("can be invoked", func(then *spec.Case) {
			then.Then(desc).Should().Have("Case")
		})
	})

	spec.Describe("A Test Case").Run(func(it *spec.Feature) {
		it.It("is obtained by invoking a feature", func(then *spec.Case) {
			kase = desc.Case("behaves properly")
			then.Then(kase.How()).Should().Be("behaves properly")
			then.Then(kase.Feature()).Should().Be(desc)
		})

		it.It("is also a scope", func(then *spec.Case) {
			then.Then(kase).Should().Have("Enter")
			then.Then(kase).Should().Have("Exit")
		})

		it.It("reports entering its scope", func(then *spec.Case) {
			kase.Enter()
			defer kase.Exit()
			then.Then(result.EnteredCase).Should().Be(kase)
		})

		it.It("can be invoked", func(then *spec.Case) {
			then.Then(kase).Should().Have("Then")
		})

		it.It("reports a panicking body and carries on", func(then *spec.Case) {
			desc.Case("explodes").Run(func(*spec.Case) {
				panic("boom")
			})
			then.Then(result.RaisedCause).ShouldNot().Be(nil)
			then.Then(result.RaisedCause.Error()).Should().Match("boom")
		})
	})

	spec.Describe("A Test Target").Run(func(it *spec.Feature) {
		it.It("is obtained by invoking a test case", func(then *spec.Case) {
			target = kase.Then(42)
			then.Then(target.Done()).ShouldNot().Hold()
		})

		it.It("stores the subject", func(then *spec.Case) {
			then.Then(target.Subject()).Should().Be(42)
		})

		it.It("generates a proxy on calling Should", func(then *spec.Case) {
			proxy := target.Should()
			then.Then(proxy.Subject()).Should().Be(42)
			then.Then(proxy.Negated()).ShouldNot().Hold()
		})

		it.It("generates a negated proxy on calling ShouldNot", func(then *spec.Case) {
			proxy := target.ShouldNot()
			then.Then(proxy.Subject()).Should().Be(42)
			then.Then(proxy.Negated()).Should().Hold()
		})

		it.It("does not report before any assertion", func(then *spec.Case) {
			then.Then(result.SucceededTarget).ShouldNot().Hold()
			then.Then(result.FailedTarget).ShouldNot().Hold()
		})

		it.It("reports succeeding assertions", func(then *spec.Case) {
			target.Should().Be(42)
			then.Then(result.SucceededTarget.Subject()).Should().Be(42)
			then.Then(result.SucceededTarget.Verb()).Should().Be("be")
			then.Then(result.SucceededTarget.Expected()).Should().Be(42)
		})

		it.It("reports failing assertions", func(then *spec.Case) {
			target.Should().Be(21)
			then.Then(result.FailedTarget.Subject()).Should().Be(42)
			then.Then(result.FailedTarget.Verb()).Should().Be("be")
			then.Then(result.FailedTarget.Expected()).Should().Be(21)
		})

		it.It("reports negated failing assertions as success", func(then *spec.Case) {
			target.ShouldNot().Be(21)
			then.Then(result.SucceededTarget.Subject()).Should().Be(42)
			then.Then(result.SucceededTarget.Verb()).Should().Be("be")
			then.Then(result.SucceededTarget.Expected()).Should().Be(21)
		})
	})

	spec.Describe("A Test Target's assertions").Run(func(it *spec.Feature) {
		it.It("check equality", func(then *spec.Case) {
			then.Then(kase.Then(42).Should().Be(42)).Should().Succeed()
			then.Then(kase.Then(42).Should().Be(21)).Should().Fail()
		})

		it.It("check less (or equal)", func(then *spec.Case) {
			then.Then(kase.Then(42).Should().BeLessThan(43)).Should().Succeed()
			then.Then(kase.Then(42).Should().BeLessThan(42)).Should().Fail()
			then.Then(kase.Then(42).Should().BeLessOrEqual(42)).Should().Succeed()
		})

		it.It("check greater (or equal)", func(then *spec.Case) {
			then.Then(kase.Then(42).Should().BeGreaterThan(41)).Should().Succeed()
			then.Then(kase.Then(42).Should().BeGreaterThan(42)).Should().Fail()
			then.Then(kase.Then(42).Should().BeGreaterOrEqual(42)).Should().Succeed()
		})

		it.It("check truth", func(then *spec.Case) {
			then.Then(kase.Then(true).Should().Hold()).Should().Succeed()
			then.Then(kase.Then(false).Should().Hold()).Should().Fail()
		})

		it.It("duck-type", func(then *spec.Case) {
			then.Then(kase.Then(then.Then(42)).Should().Have("Should")).Should().Succeed()
			then.Then(kase.Then(then.Then(42)).Should().Have("random crap")).Should().Fail()
		})

		it.It("find an element in a collection", func(then *spec.Case) {
			then.Then(kase.Then([]int{1, 2, 3}).Should().Contain(1)).Should().Succeed()
			then.Then(kase.Then([]int{1, 2, 3}).Should().Contain(4)).Should().Fail()
		})

		it.It("check for panics and errors", func(then *spec.Case) {
			then.Then(kase.Then(epicFail).Should().Throw(errValue)).Should().Succeed()
			then.Then(kase.Then(epicFail).Should().Throw(io.ErrShortBuffer)).Should().Fail()
			then.Then(kase.Then(parseAnswer).Should().Throw(spec.Kind[*strconv.NumError]())).Should().Succeed()
			then.Then(kase.Then(parseAnswer).Should().Throw(spec.Kind[*fs.PathError]())).Should().Fail()
		})

		it.It("match regular expressions", func(then *spec.Case) {
			then.Then(kase.Then("hello world").Should().Match("w.rld")).Should().Succeed()
			then.Then(kase.Then("hello world").Should().Match("^hello$")).Should().Fail()
		})
	})

	spec.Describe("Run completion").Run(func(it *spec.Feature) {
		it.It("resets the counters on finish", func(then *spec.Case) {
			then.Then(result.Failed()).Should().BeGreaterThan(0)
			result.Finish()
			then.Then(result.Failed()).Should().Be(0)
			then.Then(result.Finished).Should().Hold()
		})

		it.It("never exits with a status that wraps around to success", func(then *spec.Case) {
			then.Then(spec.ExitCode(0)).Should().Be(0)
			then.Then(spec.ExitCode(3)).Should().Be(3)
			then.Then(spec.ExitCode(256)).Should().Be(spec.MaxExitCode)
		})
	})
}
