package report_test

import (
	"errors"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/GoSpecRunner/internal/report"
	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

var _ = Describe("Collector", func() {
	var (
		collector *report.Collector
		clock     time.Time
	)

	BeforeEach(func() {
		clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		collector = report.NewCollector("Self-check").WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		})
	})

	run := func() {
		spec.Describe("A", spec.WithSink(collector)).Run(func(it *spec.Feature) {
			it.It("does X", func(then *spec.Case) {
				then.Then(42).Should().Be(42)
				then.Then([]int{1, 2, 3}).Should().Contain(4)
			})
			it.It("explodes", func(then *spec.Case) {
				panic("boom")
			})
		})
		spec.Describe("B", spec.WithSink(collector)).Run(func(it *spec.Feature) {
			it.It("throws", func(then *spec.Case) {
				then.Then(func() { panic(errors.New("wrong")) }).Should().Throw("right")
			})
		})
	}

	It("should record typed nil errors without raising", func() {
		var pathErr *os.PathError
		c := spec.Describe("A", spec.WithSink(collector)).Case("nil error")
		Expect(func() {
			c.Then(pathErr).Should().Be(nil)
		}).ToNot(Panic())

		r := collector.Current()
		Expect(r.Raised).To(BeZero())
		Expect(r.Passed).To(Equal(1))
		Expect(r.Features[0].Cases[0].Assertions[0].Subject).To(Equal("*fs.PathError(nil)"))
	})

	It("should build features, cases and assertions in order", func() {
		run()
		r := collector.Current()
		Expect(r.Title).To(Equal("Self-check"))
		Expect(r.ID).ToNot(BeEmpty())
		Expect(r.Features).To(HaveLen(2))
		Expect(r.Features[0].What).To(Equal("A"))
		Expect(r.Features[0].Cases).To(HaveLen(2))

		doesX := r.Features[0].Cases[0]
		Expect(doesX.How).To(Equal("does X"))
		Expect(doesX.Assertions).To(HaveLen(2))
		Expect(doesX.Assertions[0].Subject).To(Equal("42"))
		Expect(doesX.Assertions[0].Success).To(BeTrue())
		Expect(doesX.Assertions[1].Verb).To(Equal("contain"))
		Expect(doesX.Assertions[1].Expected).To(Equal("4"))
		Expect(doesX.Failed()).To(BeTrue())

		Expect(r.Features[0].Cases[1].Raised).To(Equal("panic: boom"))
	})

	It("should record what a throw assertion caught", func() {
		run()
		throws := collector.Current().Features[1].Cases[0].Assertions[0]
		Expect(throws.Verb).To(Equal("throw"))
		Expect(throws.Expected).To(Equal(`"right"`))
		Expect(throws.Caught).To(Equal("panic: wrong"))
	})

	It("should count failures including raised bodies", func() {
		run()
		Expect(collector.Failed()).To(Equal(3))
		Expect(collector.Current().Passed).To(Equal(1))
		Expect(collector.Current().Raised).To(Equal(1))
	})

	It("should seal the report on Finish and start a new one", func() {
		Expect(collector.Report()).To(BeNil())
		run()
		id := collector.Current().ID
		collector.Finish()

		sealed := collector.Report()
		Expect(sealed).ToNot(BeNil())
		Expect(sealed.ID).To(Equal(id))
		Expect(sealed.FinishedAt.After(sealed.StartedAt)).To(BeTrue())
		Expect(sealed.Total()).To(Equal(4))

		Expect(collector.Failed()).To(BeZero())
		Expect(collector.Current().ID).ToNot(Equal(id))
		Expect(collector.Current().Features).To(BeEmpty())
	})

	It("should open sections for cases that were never entered", func() {
		spec.Describe("C", spec.WithSink(collector)).Case("direct").Then(true).Should().Hold()
		r := collector.Current()
		Expect(r.Features).To(HaveLen(1))
		Expect(r.Features[0].What).To(Equal("C"))
		Expect(r.Features[0].Cases[0].How).To(Equal("direct"))
		Expect(r.Features[0].Cases[0].Assertions).To(HaveLen(1))
	})

	It("should attribute feature-level panics to the feature", func() {
		spec.Describe("D", spec.WithSink(collector)).Run(func(it *spec.Feature) {
			panic("outside")
		})
		Expect(collector.Current().Features[0].Raised).To(Equal("panic: outside"))
	})
})
