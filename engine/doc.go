// Package engine is the one-call facade over the detection pipeline.
//
// Detect takes object positions and an aspect catalog and returns the
// complete Result: the classified edge lists, the major-aspect
// patterns, every detected shape after suppression and sequencing, and
// the filament layer (minor links, singleton map, combo groups).
//
// Quick start:
//
//	res, err := engine.Detect(pos, aspect.Default())
//	if err != nil {
//		return err
//	}
//	for _, s := range res.Shapes {
//		fmt.Println(s.Kind, s.Members)
//	}
//
// The engine is stateless: every call computes from its arguments alone
// and identical input yields identical output. Options thread through to
// the underlying packages — WithCompassAxis and WithSpeeds to edge
// building, WithLogger and WithParallel to shape detection.
package engine
