package availability

import "time"

// Interval полуоткрытый интервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Интервалы, которые только касаются границей (конец одного = начало другого), НЕ пересекаются.
//
// Примеры:
// - [09:00, 10:00) и [09:30, 10:30) → пересекаются
// - [09:00, 10:00) и [10:00, 11:00) → НЕ пересекаются (граничат)
// - [09:00, 11:00) и [09:30, 10:00) → пересекаются (вложение)
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// Overlaps общий примитив пересечения [aStart, aEnd) и [bStart, bEnd).
// Используется и генератором слотов, и проверкой конфликтов назначений.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
