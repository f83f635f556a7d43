// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import "fmt"

// CatalogSize is the number of distinct physical boards that can be
// assembled from the quadrant pieces. The assembled board can always be
// rotated so that a red piece sits in the upper left, leaving 3 choices
// for the red piece, then 9, 6 and 3 for the remaining corners.
const CatalogSize = 3 * 9 * 6 * 3

// RoundCount is the number of distinct (board, marker) rounds in the
// catalog.
const RoundCount = CatalogSize * MarkerCount

// CatalogBoard assembles catalog entry idx in [0,CatalogSize) and
// returns its board together with its admissible-target marker list.
// The index is decomposed by successive division over the divisors
// 3, 9, 6 and 3: the first digit picks one of the three red pieces for
// the upper left corner, and each following digit picks the nth of the
// remaining pieces whose color is still unused, placed clockwise.
func CatalogBoard(idx int) (*Board, []PlacedMarker, error) {
	if idx < 0 || idx >= CatalogSize {
		return nil, nil, fmt.Errorf("catalog index %d outside [0,%d)", idx, CatalogSize)
	}
	var digits [4]int
	for i, div := range [4]int{3, 9, 6, 3} {
		digits[i] = idx % div
		idx /= div
	}

	all := Quadrants()
	var chosen [4]Quadrant
	chosen[0] = all[digits[0]] // red pieces come first
	used := [ColorsN]bool{Red: true}
	for i := 1; i < 4; i++ {
		nth := digits[i]
		for _, q := range all {
			if used[q.Color] {
				continue
			}
			if nth == 0 {
				chosen[i] = q
				break
			}
			nth--
		}
		used[chosen[i].Color] = true
	}

	b, markers := Compose(chosen)
	return b, markers, nil
}

// CatalogRound returns the board and target of round idx in
// [0,RoundCount): board idx/17 with marker idx%17.
func CatalogRound(idx int) (*Board, Target, error) {
	if idx < 0 || idx >= RoundCount {
		return nil, Target{}, fmt.Errorf("round index %d outside [0,%d)", idx, RoundCount)
	}
	b, markers, err := CatalogBoard(idx / MarkerCount)
	if err != nil {
		return nil, Target{}, err
	}
	want, _ := MarkerFromIndex(idx % MarkerCount)
	for _, pm := range markers {
		if pm.Marker == want {
			return b, pm.Target(), nil
		}
	}
	return nil, Target{}, fmt.Errorf("marker %v missing from catalog board %d", want, idx/MarkerCount)
}

// FixedBoard returns the canonical fixed board: catalog entry 0, built
// from the first piece of each color in clockwise corner order.
func FixedBoard() (*Board, []PlacedMarker) {
	b, markers, err := CatalogBoard(0)
	if err != nil {
		panic(err) // index 0 is always valid
	}
	return b, markers
}
