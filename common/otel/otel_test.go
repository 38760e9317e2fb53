package otel

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/config"
)

var _ = Describe("parseHeaders", func() {
	It("parses comma separated pairs", func() {
		Expect(parseHeaders("api-key=abc, x-team = hr ")).To(Equal(map[string]string{
			"api-key": "abc",
			"x-team":  "hr",
		}))
	})

	It("keeps '=' inside values", func() {
		Expect(parseHeaders("authorization=Basic dXNlcjpwYXNz==")).To(HaveKeyWithValue("authorization", "Basic dXNlcjpwYXNz=="))
	})

	It("skips malformed pairs", func() {
		Expect(parseHeaders("novalue,=orphan,")).To(BeEmpty())
	})
})

var _ = Describe("Setup", func() {
	It("is a no-op without an endpoint", func() {
		telemetry, err := Setup(context.Background(), config.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(telemetry).To(BeNil())
	})
})
