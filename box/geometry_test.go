package box

import "testing"

func TestAllTilesCount(t *testing.T) {
	if len(AllTilesInfo) != AllTilesCount {
		t.Fatalf("len(AllTilesInfo) = %d, want %d", len(AllTilesInfo), AllTilesCount)
	}
}

func TestAllTilesCodesAreDenseAndOrdered(t *testing.T) {
	for i, info := range AllTilesInfo {
		if info.Code != i {
			t.Fatalf("AllTilesInfo[%d].Code = %d, want %d", i, info.Code, i)
		}
	}
}

func TestCenterTileIsValidHorizontal(t *testing.T) {
	if !CenterTileInfo.Valid() {
		t.Fatal("center tile is not valid")
	}
	if CenterTileInfo.Orientation != Horizontal {
		t.Fatalf("center tile orientation = %c, want h", CenterTileInfo.Orientation)
	}
	if CenterTileInfo.Dot != ParseDot("Hh") {
		t.Fatalf("center tile dot = %d, want %d", CenterTileInfo.Dot, ParseDot("Hh"))
	}
}

func TestCornerTilesAreInvalid(t *testing.T) {
	bottomRight := GetDot(Rows-1, Cols-1)
	if VerticalTilesInfo[bottomRight].Valid() {
		t.Fatal("vertical tile anchored at the bottom-right corner should not fit")
	}
	if HorizontalTilesInfo[bottomRight].Valid() {
		t.Fatal("horizontal tile anchored at the bottom-right corner should not fit")
	}
}

func TestTilesPermutationsSortedAndUnique(t *testing.T) {
	if len(TilesPermutations) != TilesPermutationsCount {
		t.Fatalf("len(TilesPermutations) = %d, want %d", len(TilesPermutations), TilesPermutationsCount)
	}
	seen := map[Tile]bool{}
	for i, p := range TilesPermutations {
		if seen[p] {
			t.Fatalf("duplicate permutation %q", p)
		}
		seen[p] = true
		if i > 0 && !(TilesPermutations[i-1] < p) {
			t.Fatalf("permutations not strictly sorted at index %d: %q >= %q", i, TilesPermutations[i-1], p)
		}
	}
}

func TestFindTileIndexRoundTrips(t *testing.T) {
	for i, p := range TilesPermutations {
		if got := FindTileIndex(p); got != i {
			t.Fatalf("FindTileIndex(%q) = %d, want %d", p, got, i)
		}
	}
	if FindTileIndex("000000") != -1 {
		t.Fatal("FindTileIndex of a non-permutation should be -1")
	}
}

func TestNeighborsBitboardExcludesOwnFootprint(t *testing.T) {
	info := CenterTileInfo
	if info.Bitboard.AnyMatches(info.NeighborsBitboard) {
		t.Fatal("a tile's neighbors bitboard should not overlap its own footprint")
	}
}

// TestLegalMoveCountAfterOpening freezes the count of placements legal
// immediately after the opening tile, computed by hand from the
// center tile's footprint and neighborhood: 125 of the 434 placements
// either overlap it in 1-4 dots or touch a dot next to it.
func TestLegalMoveCountAfterOpening(t *testing.T) {
	pos, err := New("Hh123456h")
	if err != nil {
		t.Fatal(err)
	}
	pos.UpdateCandidates()
	if got, want := len(pos.GetPossibleTiles()), 125; got != want {
		t.Fatalf("legal move count after the opening = %d, want %d", got, want)
	}
}
