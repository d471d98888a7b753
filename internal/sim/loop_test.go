package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Simulator", func() {
	var (
		mockCtrl   *gomock.Controller
		controller *MockController
		plant      *MockPlant
		setPoint   *MockSetPoint
		observer   *MockObserver
		simulator  *Simulator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		controller = NewMockController(mockCtrl)
		plant = NewMockPlant(mockCtrl)
		setPoint = NewMockSetPoint(mockCtrl)
		observer = NewMockObserver(mockCtrl)

		simulator = New(controller, plant, setPoint)
		simulator.AddObserver(observer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should feed the previous output into the next error", func() {
		gomock.InOrder(
			setPoint.EXPECT().At(0).Return(50),
			controller.EXPECT().Work(50).Return(62.5),
			plant.EXPECT().Work(62.5).Return(20),
			observer.EXPECT().OnStep(Sample{T: 0, R: 50, E: 50, U: 62.5, Y: 20}),

			setPoint.EXPECT().At(1).Return(50),
			controller.EXPECT().Work(30).Return(37.5),
			plant.EXPECT().Work(37.5).Return(45),
			observer.EXPECT().OnStep(Sample{T: 1, R: 50, E: 30, U: 37.5, Y: 45}),
		)

		result, err := simulator.Run(Config{Steps: 2})

		Expect(err).ToNot(HaveOccurred())
		Expect(result.Samples).To(HaveLen(2))
		Expect(result.Samples[1].E).To(Equal(30))
	})

	It("should query the set-point in increasing time order", func() {
		var seen []int
		setPoint.EXPECT().At(gomock.Any()).DoAndReturn(func(t int) int {
			seen = append(seen, t)
			return 0
		}).Times(5)
		controller.EXPECT().Work(0).Return(0.0).Times(5)
		plant.EXPECT().Work(0.0).Return(0).Times(5)
		observer.EXPECT().OnStep(gomock.Any()).Times(5)

		_, err := simulator.Run(Config{Steps: 5})

		Expect(err).ToNot(HaveOccurred())
		Expect(seen).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("should not touch any component for a negative step count", func() {
		_, err := simulator.Run(Config{Steps: -3})

		Expect(err).To(MatchError(ErrInvalidSteps))
	})
})
