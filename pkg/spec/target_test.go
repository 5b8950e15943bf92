package spec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

var _ = Describe("Target", func() {
	var (
		sink   *mockSink
		target *spec.Target
	)

	BeforeEach(func() {
		sink = &mockSink{}
		target = spec.Describe("a feature", spec.WithSink(sink)).Case("behaves").Then(42)
	})

	It("should store the subject", func() {
		Expect(target.Subject()).To(Equal(42))
		Expect(target.Expected()).To(Equal(spec.NoValue))
	})

	It("should generate a proxy on Should", func() {
		proxy := target.Should()
		Expect(proxy).ToNot(BeIdenticalTo(target))
		Expect(proxy.Subject()).To(Equal(42))
		Expect(proxy.Negated()).To(BeFalse())
		Expect(proxy.Case()).To(BeIdenticalTo(target.Case()))
	})

	It("should generate a negated proxy on ShouldNot", func() {
		proxy := target.ShouldNot()
		Expect(proxy.Subject()).To(Equal(42))
		Expect(proxy.Negated()).To(BeTrue())
		Expect(proxy.Meaning()).To(Equal("should not"))
		Expect(target.Negated()).To(BeFalse())
	})

	It("should not report proxy access", func() {
		target.Should().ShouldNot().Should()
		target.ShouldNot().ShouldNot()
		Expect(sink.notifications()).To(BeZero())
	})

	It("should report succeeding assertions", func() {
		target.Should().Be(42)
		Expect(sink.succeededTarget.Subject()).To(Equal(42))
		Expect(sink.succeededTarget.Verb()).To(Equal("be"))
		Expect(sink.succeededTarget.Expected()).To(Equal(42))
		Expect(sink.succeededTarget.Success()).To(BeTrue())
		Expect(sink.notifications()).To(Equal(1))
	})

	It("should report failing assertions", func() {
		target.Should().Be(21)
		Expect(sink.failedTarget.Subject()).To(Equal(42))
		Expect(sink.failedTarget.Verb()).To(Equal("be"))
		Expect(sink.failedTarget.Expected()).To(Equal(21))
		Expect(sink.failedTarget.Success()).To(BeFalse())
		Expect(sink.notifications()).To(Equal(1))
	})

	It("should report negated failing assertions as success", func() {
		target.ShouldNot().Be(21)
		Expect(sink.succeededTarget.Subject()).To(Equal(42))
		Expect(sink.succeededTarget.Meaning()).To(Equal("should not"))
		Expect(sink.succeededTarget.Expected()).To(Equal(21))
		Expect(sink.failedTarget).To(BeNil())
	})

	It("should return itself from assertions for chaining", func() {
		proxy := target.Should()
		Expect(proxy.Be(42)).To(BeIdenticalTo(proxy))
		Expect(proxy.BeLessThan(43).BeGreaterThan(41).Hold()).To(BeIdenticalTo(proxy))
		Expect(sink.successes).To(Equal(4))
	})

	It("should overwrite verb and outcome on every assertion", func() {
		proxy := target.Should()
		proxy.Be(42)
		Expect(proxy.Success()).To(BeTrue())
		proxy.Contain(1)
		Expect(proxy.Verb()).To(Equal("contain"))
		Expect(proxy.Expected()).To(Equal(1))
		Expect(proxy.Success()).To(BeFalse())
		Expect(proxy.Done()).To(BeTrue())
	})

	DescribeTable("Evaluate is the complement under negation",
		func(condition, negated, want bool) {
			t := target.Should()
			if negated {
				t = target.ShouldNot()
			}
			Expect(t.Evaluate(condition, "hold", spec.NoValue)).To(Equal(want))
			Expect(t.Success()).To(Equal(want))
			Expect(sink.notifications()).To(Equal(1))
		},
		Entry("true", true, false, true),
		Entry("false", false, false, false),
		Entry("negated true", true, true, false),
		Entry("negated false", false, true, true),
	)
})
