package kinematics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestKinematicsSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Kinematics Suite")
}
