package cursorkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/cursorkit"
	"go.llib.dev/cursorkit/cursorkitcontract"
)

func ExampleRange() {
	for n := range cursorkit.Range(0, 5).Iter() {
		_ = n // 0, 1, 2, 3, 4
	}
}

func ExampleRange_withStep() {
	rng := cursorkit.Range(2, 10, cursorkit.RangeStep(3))

	for n := range rng.Iter() {
		_ = n // 2, 5, 8
	}
}

func ExampleRangeTo() {
	for n := range cursorkit.RangeTo(3).Iter() {
		_ = n // 0, 1, 2
	}
}

func ExampleProgression() {
	even := cursorkit.Progression(0, 2)

	for range 3 {
		n, _ := even.Value()
		_ = n // 0, 2, 4
		even.Advance()
	}
}

func TestRange_smoke(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, cursorkit.Collect(cursorkit.Range(0, 5)))
	assert.Equal(t, []int{4, 5, 6}, cursorkit.Collect(cursorkit.Range(4, 7)))
	assert.Equal(t, []int{2, 5, 8}, cursorkit.Collect(cursorkit.Range(2, 10, cursorkit.RangeStep(3))))
	assert.Equal(t, []int{10, 7, 4, 1}, cursorkit.Collect(cursorkit.Range(10, 0, cursorkit.RangeStep(-3))))
	assert.Empty(t, cursorkit.Collect(cursorkit.Range(5, 5)))
	assert.Empty(t, cursorkit.Collect(cursorkit.Range(5, 1)))
	assert.Empty(t, cursorkit.Collect(cursorkit.Range(1, 5, cursorkit.RangeStep(-1))))
}

func TestRange(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		begin = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(-10, 10)
		})
		end = testcase.Let(s, func(t *testcase.T) int {
			return begin.Get(t) + t.Random.IntB(1, 20)
		})
		step = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 5)
		})
	)
	subject := testcase.Let(s, func(t *testcase.T) cursorkit.Sequence[int, int] {
		return cursorkit.Range(begin.Get(t), end.Get(t), cursorkit.RangeStep(step.Get(t)))
	})

	s.Then("it yields every begin+n*step value below end", func(t *testcase.T) {
		var expected []int
		for v := begin.Get(t); v < end.Get(t); v += step.Get(t) {
			expected = append(expected, v)
		}
		assert.NotEmpty(t, expected)
		assert.Equal(t, expected, cursorkit.Collect(subject.Get(t)))
	})

	s.Then("its length is the stepped distance between begin and end", func(t *testcase.T) {
		distance := end.Get(t) - begin.Get(t)
		expected := (distance + step.Get(t) - 1) / step.Get(t)
		assert.Equal(t, expected, cursorkit.Count(subject.Get(t)))
	})

	s.Then("it can be traversed any number of times", func(t *testcase.T) {
		assert.Equal(t,
			cursorkit.Collect(subject.Get(t)),
			cursorkit.Collect(subject.Get(t)))
	})

	s.When("step points away from end", func(s *testcase.Spec) {
		step.Let(s, func(t *testcase.T) int {
			return -1 * t.Random.IntB(1, 5)
		})

		s.Then("the sequence is empty", func(t *testcase.T) {
			assert.Empty(t, cursorkit.Collect(subject.Get(t)))
		})
	})

	s.When("step is negative and begin is above end", func(s *testcase.Spec) {
		end.Let(s, func(t *testcase.T) int {
			return begin.Get(t) - t.Random.IntB(1, 20)
		})
		step.Let(s, func(t *testcase.T) int {
			return -1 * t.Random.IntB(1, 5)
		})

		s.Then("it counts downwards and stops above end", func(t *testcase.T) {
			var expected []int
			for v := begin.Get(t); end.Get(t) < v; v += step.Get(t) {
				expected = append(expected, v)
			}
			assert.NotEmpty(t, expected)
			assert.Equal(t, expected, cursorkit.Collect(subject.Get(t)))
		})
	})
}

func TestRange_supportsNamedAndUnsignedKinds(t *testing.T) {
	type level int8
	assert.Equal(t, []level{0, 1, 2}, cursorkit.Collect(cursorkit.Range[level](0, 3)))
	assert.Equal(t, []uint{0, 2}, cursorkit.Collect(cursorkit.Range[uint](0, 4, cursorkit.RangeStep[uint](2))))
	assert.Empty(t, cursorkit.Collect(cursorkit.Range[uint](4, 0)), "an unsigned range can't count downwards")
}

func TestRangeTo(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it is a range starting from zero", func(t *testcase.T) {
		n := t.Random.IntB(1, 10)
		assert.Equal(t,
			cursorkit.Collect(cursorkit.Range(0, n)),
			cursorkit.Collect(cursorkit.RangeTo(n)))
	})

	s.Test("zero makes it empty", func(t *testcase.T) {
		assert.Empty(t, cursorkit.Collect(cursorkit.RangeTo(0)))
	})
}

func TestRangeStep_zeroStepPanics(t *testing.T) {
	assert.Panic(t, func() { cursorkit.RangeStep(0) })
}

func TestProgression(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it advances endlessly by its step", func(t *testcase.T) {
		start := t.Random.IntB(-10, 10)
		step := t.Random.IntB(1, 5)
		c := cursorkit.Progression(start, step)
		for i := 0; i < 10; i++ {
			assert.True(t, c.IsLive())
			got, err := c.Value()
			assert.NoError(t, err)
			assert.Equal(t, start+i*step, got)
			c.Advance()
		}
	})

	s.Test("two progressions meet when their values match", func(t *testcase.T) {
		a := cursorkit.Progression(0, 2)
		b := cursorkit.Progression(4, 2)
		assert.False(t, a.Equal(b))
		a.Advance()
		a.Advance()
		assert.True(t, a.Equal(b))
	})
}

func TestUnbounded(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the walking cursor never reaches the end cursor", func(t *testcase.T) {
		seq := cursorkit.Unbounded(0, 1)
		end := seq.End()
		c := seq.Begin()
		for i := 0; i < 100; i++ {
			assert.True(t, c.IsLive())
			assert.False(t, c.Equal(end))
			c.Advance()
		}
	})

	s.Test("it produces the arithmetic progression of its start and step", func(t *testcase.T) {
		start := t.Random.IntB(-10, 10)
		step := t.Random.IntB(1, 5)
		c := cursorkit.Unbounded(start, step).Begin()
		for i := 0; i < 5; i++ {
			got, err := c.Value()
			assert.NoError(t, err)
			assert.Equal(t, start+i*step, got)
			c.Advance()
		}
	})
}

func TestRange_implementsIterable(t *testing.T) {
	cursorkitcontract.Iterable[int, int](func(tb testing.TB) cursorkit.Iterable[int, int] {
		t := testcase.ToT(&tb)
		begin := t.Random.IntB(3, 7)
		end := t.Random.IntB(8, 13)
		return cursorkit.Range(begin, end)
	}).Test(t)
}
