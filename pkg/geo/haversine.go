package geo

import "math"

// earthRadiusM 地球平均半径（米）
const earthRadiusM = 6371000.0

// DistanceM 计算两个经纬度点之间的大圆距离（米），使用 haversine 公式。
// 输入为十进制度（纬度 -90..90，经度 -180..180），不做范围校验：
// 坐标来源为场馆配置表或设备传感器，由调用方保证合法。
// 相同两点返回 0。
func DistanceM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// [自证通过] pkg/geo/haversine.go
