package geo

import "math"

// earthRadiusKm 地球平均半径（公里）
const earthRadiusKm = 6371.0

// DistanceKm 计算两个经纬度之间的大圆距离（haversine 公式）
// 任一坐标缺失或非有限数值时返回 nil，调用方按“距离未知”处理
func DistanceKm(lat1, lon1, lat2, lon2 *float64) *float64 {
	if !isFinite(lat1) || !isFinite(lon1) || !isFinite(lat2) || !isFinite(lon2) {
		return nil
	}

	dLat := toRadians(*lat2 - *lat1)
	dLon := toRadians(*lon2 - *lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(*lat1))*math.Cos(toRadians(*lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	d := earthRadiusKm * c
	return &d
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
