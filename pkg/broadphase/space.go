// Package broadphase находит пересекающиеся пары тел по тегам групп.
package broadphase

import (
	"math"

	"github.com/solarlune/resolv"
)

// Tag — группа тел (игрок, враги, снаряды...).
type Tag = resolv.Tags

// NewTag регистрирует новую группу. resolv допускает не более 64 тегов.
func NewTag(name string) Tag {
	return resolv.NewTag(name)
}

// Pair — пересекающаяся пара: A из первой группы, B из второй.
type Pair[ID comparable] struct {
	A, B ID
}

type shape[ID comparable] struct {
	id         ID
	tag        Tag
	x, y, w, h float64
	sh         *resolv.ConvexPolygon
}

// overlaps проверяет пересечение прямоугольников, включая полное вложение.
func (a *shape[ID]) overlaps(b *shape[ID]) bool {
	return math.Abs(a.x-b.x) < (a.w+b.w)/2 && math.Abs(a.y-b.y) < (a.h+b.h)/2
}

// Space — сетка resolv с привязкой фигур к идентификаторам сущностей.
type Space[ID comparable] struct {
	space   *resolv.Space
	byID    map[ID]*shape[ID]
	byShape map[resolv.IShape]ID
}

// NewSpace создаёт пространство размером width×height с ячейками cell×cell.
func NewSpace[ID comparable](width, height, cell int) *Space[ID] {
	return &Space[ID]{
		space:   resolv.NewSpace(width, height, cell, cell),
		byID:    make(map[ID]*shape[ID]),
		byShape: make(map[resolv.IShape]ID),
	}
}

// Set добавляет тело или обновляет его положение. x, y задают центр.
func (s *Space[ID]) Set(id ID, tag Tag, x, y, w, h float64) {
	if existing, ok := s.byID[id]; ok {
		existing.x, existing.y = x, y
		existing.sh.SetPosition(x, y)
		return
	}
	sh := resolv.NewRectangleTopLeft(x-w/2, y-h/2, w, h)
	sh.Tags().Set(tag)
	sh.SetPosition(x, y)
	s.space.Add(sh)
	s.byID[id] = &shape[ID]{id: id, tag: tag, x: x, y: y, w: w, h: h, sh: sh}
	s.byShape[sh] = id
}

// Remove убирает тело. Отсутствующее тело игнорируется.
func (s *Space[ID]) Remove(id ID) {
	existing, ok := s.byID[id]
	if !ok {
		return
	}
	s.space.Remove(existing.sh)
	delete(s.byShape, existing.sh)
	delete(s.byID, id)
}

// Retain удаляет все тела, для которых keep вернул false.
func (s *Space[ID]) Retain(keep func(ID) bool) {
	for id := range s.byID {
		if !keep(id) {
			s.Remove(id)
		}
	}
}

// Pairs возвращает все пересечения тел группы a с телами группы b.
// Кандидатов отбирает сетка resolv, пересечение проверяется по
// ограничивающим прямоугольникам, поэтому вложенное тело тоже попадает в пару.
// Порядок пар соответствует порядку обхода и не гарантируется.
func (s *Space[ID]) Pairs(a, b Tag) []Pair[ID] {
	var pairs []Pair[ID]
	for id, src := range s.byID {
		if src.tag != a {
			continue
		}
		src.sh.SelectTouchingCells(0).FilterShapes().ByTags(b).ForEach(func(sh resolv.IShape) bool {
			otherID, ok := s.byShape[sh]
			if !ok || otherID == id {
				return true
			}
			if src.overlaps(s.byID[otherID]) {
				pairs = append(pairs, Pair[ID]{A: id, B: otherID})
			}
			return true
		})
	}
	return pairs
}
