package batch

import "sync"

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getPlanes returns count planes of n elements each, backed by one pooled
// buffer.
func getPlanes(count, n int) (planes [][]float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := count * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	planes = make([][]float64, count)
	for i := range planes {
		planes[i] = buf.data[i*n : (i+1)*n : (i+1)*n]
	}
	return planes, buf
}

func putPlanes(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func checkLen(op string, want int, got ...int) {
	for _, n := range got {
		if n != want {
			panic("batch: " + op + ": slice length mismatch")
		}
	}
}
