package main

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	rt "github.com/WadeSeidule/wadescript/runtime"
	"github.com/loov/hrtime"
)

const count = 1e7

func main() {
	b := hrtime.NewBenchmarkTSC(count)

	keys := make([]string, count)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	d := rt.NewDict()

	runtime.GC()

	for i := 0; b.Next(); i++ {
		if i >= count {
			i = 0
		}
		t := hrtime.TSC()
		d.Set(keys[i], int64(i))
		d.Get(keys[i])
		dur := hrtime.TSC() - t
		if dur.ApproxDuration() > time.Millisecond*100 {
			// Rehashes at large sizes show up as slow outliers. Allocating
			// the doubled bucket slice takes a while on its own, presumably
			// because it is zeroed
			fmt.Printf("big number at %d\n", i)
		}
	}

	opts := hrtime.HistogramOptions{
		BinCount:        20,
		NiceRange:       true,
		ClampMaximum:    0,
		ClampPercentile: 0.999999,
	}
	fmt.Println(hrtime.NewDurationHistogram(b.Laps(), &opts))
}
