package utils

import (
	"fmt"
	"math"
)

// Easing Functions (缓动函数)
//
// 缓动函数将归一化进度 t ∈ [0, 1] 重新映射，用于塑造插值运动的速度曲线。
// 所有函数满足 f(0) = 0 且 f(1) = 1，中间值可以越界（如 EaseOutBack 的回弹）。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// 回弹缓动常量
const (
	backC1 = 1.70158
	backC3 = backC1 + 1
)

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutBack 回弹缓出
// 特点：先冲过终点，再回落到终点（标题"掉落"动画使用）
// 公式：f(t) = 1 + c3·(t-1)³ + c1·(t-1)²，c1 = 1.70158，c3 = c1 + 1
func EaseOutBack(t float64) float64 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// 配置文件中使用的缓动名称
const (
	EasingLinear   = "linear"
	EasingOutBack  = "outBack"
	EasingOutCubic = "outCubic"
	EasingOutQuad  = "outQuad"
)

var easingByName = map[string]EasingFunc{
	EasingLinear:   EaseLinear,
	EasingOutBack:  EaseOutBack,
	EasingOutCubic: EaseOutCubic,
	EasingOutQuad:  EaseOutQuad,
}

// EasingByName 根据配置名称查找缓动函数
// 空名称返回 EaseOutBack（默认）
func EasingByName(name string) (EasingFunc, error) {
	if name == "" {
		return EaseOutBack, nil
	}
	fn, ok := easingByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 范围内，NaN 视为 0
func Clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
