package geo

import (
	"math"
	"testing"
)

func TestDistanceM_SamePoint(t *testing.T) {
	d := DistanceM(-9.082020, -78.580877, -9.082020, -78.580877)
	if d != 0 {
		t.Errorf("相同两点期望距离为0，实际=%f", d)
	}
}

func TestDistanceM_Symmetric(t *testing.T) {
	d1 := DistanceM(-9.082020, -78.580877, -9.129202, -78.526769)
	d2 := DistanceM(-9.129202, -78.526769, -9.082020, -78.580877)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("距离应对称: d1=%f d2=%f", d1, d2)
	}
}

func TestDistanceM_TwoSites(t *testing.T) {
	// 钦博特两个场馆之间的实测合理区间
	d := DistanceM(-9.082020, -78.580877, -9.129202, -78.526769)
	if d < 6900 || d > 7100 {
		t.Errorf("两场馆距离期望在 6900~7100 米之间，实际=%f", d)
	}
}

func TestDistanceM_SmallOffset(t *testing.T) {
	// 纬度偏移 0.001 度约等于 111 米
	d := DistanceM(-9.082020, -78.580877, -9.083020, -78.580877)
	if d < 100 || d > 125 {
		t.Errorf("0.001度纬度偏移期望约111米，实际=%f", d)
	}
}
