// internal/timer/scheduler.go
package timer

import "time"

// Handle — дескриптор запланированного вызова. Нулевой дескриптор ничего не означает.
type Handle uint64

type entry struct {
	armedAt  time.Duration // Момент последнего взвода
	deadline time.Duration
	interval time.Duration // 0 для одноразового вызова
	seq      uint64
	fn       func()
}

// Scheduler хранит отложенные вызовы относительно часов симуляции.
// Вызовы выполняются только внутри Advance, в порядке сроков;
// при равных сроках в порядке планирования.
type Scheduler struct {
	now     time.Duration
	nextID  Handle
	seq     uint64
	entries map[Handle]*entry
}

// minInterval не даёт повторяющемуся таймеру зациклить Advance.
const minInterval = time.Millisecond

func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID:  1,
		entries: make(map[Handle]*entry),
	}
}

// Now возвращает текущее время симуляции.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After планирует одноразовый вызов через d.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.add(d, 0, fn)
}

// Every планирует повторяющийся вызов с интервалом d; первый через d.
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	if d < minInterval {
		d = minInterval
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.seq++
	s.entries[id] = &entry{
		armedAt:  s.now,
		deadline: s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	return id
}

// Cancel снимает вызов. Возвращает false, если он уже выполнен или снят.
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.entries[h]; !ok {
		return false
	}
	delete(s.entries, h)
	return true
}

// Pending сообщает, ожидает ли вызов выполнения.
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.entries[h]
	return ok
}

// SetInterval меняет интервал повторяющегося таймера. Новый интервал
// отсчитывается от момента последнего взвода, то есть действует уже на текущий цикл.
func (s *Scheduler) SetInterval(h Handle, d time.Duration) bool {
	e, ok := s.entries[h]
	if !ok || e.interval == 0 {
		return false
	}
	if d < minInterval {
		d = minInterval
	}
	e.interval = d
	e.deadline = e.armedAt + d
	return true
}

// Advance сдвигает часы на delta и выполняет все вызовы, срок которых наступил.
// Во время вызова Now() равен его сроку.
func (s *Scheduler) Advance(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	target := s.now + delta
	for {
		id, e := s.nextDue(target)
		if e == nil {
			break
		}
		s.now = e.deadline
		if e.interval > 0 {
			e.armedAt = e.deadline
			e.deadline += e.interval
			s.seq++
			e.seq = s.seq
		} else {
			delete(s.entries, id)
		}
		e.fn()
	}
	s.now = target
}

func (s *Scheduler) nextDue(target time.Duration) (Handle, *entry) {
	var (
		bestID Handle
		best   *entry
	)
	for id, e := range s.entries {
		if e.deadline > target {
			continue
		}
		if best == nil || e.deadline < best.deadline || (e.deadline == best.deadline && e.seq < best.seq) {
			bestID, best = id, e
		}
	}
	return bestID, best
}
