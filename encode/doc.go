// Package encode renders schema trees as builder-call notation, e.g.
//
//	object {
//	  "len": number(10)
//	  /fo*/: number
//	}
//
// The notation mirrors the varshape builder API and is meant for debug
// output and tooling, not for interchange.
package encode
