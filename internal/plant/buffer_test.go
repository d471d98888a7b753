package plant

import (
	"errors"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/queueloop/internal/randsrc"
)

// recordingSource delegates to Midpoint and remembers every requested range.
type recordingSource struct {
	calls [][2]float64
}

func (s *recordingSource) Sample(low, high float64) (float64, error) {
	s.calls = append(s.calls, [2]float64{low, high})
	return randsrc.Midpoint{}.Sample(low, high)
}

type failingSource struct{}

func (failingSource) Sample(low, high float64) (float64, error) {
	return 0, randsrc.ErrInvalidRange
}

var _ = Describe("Buffer", func() {
	Context("construction", func() {
		DescribeTable("rejects invalid limits",
			func(maxWIP, maxFlow int) {
				b, err := New(maxWIP, maxFlow, randsrc.Midpoint{})
				Expect(b).To(BeNil())
				Expect(errors.Is(err, ErrConfiguration)).To(BeTrue())
			},
			Entry("zero wip", 0, 10),
			Entry("negative wip", -5, 10),
			Entry("negative flow", 50, -1),
		)

		It("should reject a nil source", func() {
			_, err := New(50, 10, nil)
			Expect(err).To(MatchError(ErrConfiguration))
		})

		It("should start empty", func() {
			b, err := New(50, 10, randsrc.Midpoint{})
			Expect(err).ToNot(HaveOccurred())
			Expect(b.Queued()).To(Equal(0))
			Expect(b.WIP()).To(Equal(0))
			Expect(b.MaxWIP()).To(Equal(50))
			Expect(b.MaxFlow()).To(Equal(10))
		})
	})

	Context("with a midpoint source", func() {
		var b *Buffer

		BeforeEach(func() {
			var err error
			b, err = New(50, 10, randsrc.Midpoint{})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should clamp the command to max wip", func() {
			Expect(b.Work(63)).To(Equal(20))
			Expect(b.WIP()).To(Equal(25))
		})

		It("should only admit up to the remaining headroom", func() {
			b.Work(63)
			Expect(b.Work(38.3)).To(Equal(40))
			Expect(b.WIP()).To(Equal(25))
		})

		It("should admit nothing for a negative command", func() {
			b.Work(63)
			Expect(b.Work(-4.14)).To(Equal(15))
			Expect(b.WIP()).To(Equal(25))
		})

		It("should round the completion draw half-up before truncating", func() {
			b.Work(21)
			// admitted 21, completed 10.5 -> 10, drained 5
			Expect(b.WIP()).To(Equal(11))
			Expect(b.Queued()).To(Equal(5))
		})

		It("should never drain more than is queued", func() {
			Expect(b.Work(2)).To(Equal(0))
			Expect(b.WIP()).To(Equal(1))
		})
	})

	It("should not sample completion when nothing was admitted", func() {
		src := &recordingSource{}
		b, err := New(50, 10, src)
		Expect(err).ToNot(HaveOccurred())

		b.Work(0.01)

		Expect(src.calls).To(Equal([][2]float64{{0, 10}}))
		Expect(b.WIP()).To(Equal(0))
	})

	It("should not sample the outlet when it is sealed", func() {
		src := &recordingSource{}
		b, err := New(50, 0, src)
		Expect(err).ToNot(HaveOccurred())

		for i := 0; i < 20; i++ {
			Expect(b.Work(0)).To(Equal(0))
		}
		Expect(src.calls).To(BeEmpty())

		b.Work(10)
		queued := b.Queued()
		for i := 0; i < 20; i++ {
			Expect(b.Work(0)).To(Equal(queued))
		}
	})

	It("should panic when the source breaks its contract", func() {
		b, err := New(50, 10, failingSource{})
		Expect(err).ToNot(HaveOccurred())

		Expect(func() { b.Work(0) }).To(PanicWith(MatchError(randsrc.ErrInvalidRange)))
	})

	It("should hold its invariants under random load", func() {
		const maxWIP, maxFlow = 50, 10
		b, err := New(maxWIP, maxFlow, randsrc.NewUniform(99))
		Expect(err).ToNot(HaveOccurred())

		cmd := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 20000; i++ {
			before := b.Queued()
			u := cmd.Float64()*200 - 60

			after := b.Work(u)

			Expect(after).To(Equal(b.Queued()))
			Expect(b.WIP()).To(BeNumerically(">=", 0))
			Expect(b.WIP()).To(BeNumerically("<=", maxWIP))
			Expect(after).To(BeNumerically(">=", 0))
			Expect(before - after).To(BeNumerically("<=", maxFlow))
		}
	})
})
