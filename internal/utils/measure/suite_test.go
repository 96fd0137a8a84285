package measure

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
)

func TestMeasure(t *testing.T) {
	logging.NewTestLogger()
	RegisterFailHandler(Fail)
	RunSpecs(t, "Measure Suite")
}
