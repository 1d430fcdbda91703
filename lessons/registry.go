// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/lessons/base/keylist"
)

// Lesson is a registered lesson.
type Lesson struct {

	// Name is the short name used on the command line.
	Name string

	// Title is the display name.
	Title string

	// Group is the lesson number the lesson belongs to.
	Group int

	// New starts the lesson in the mount with the given canvas size.
	New func(m Mount, width, height int) *Demo
}

var (
	registry   keylist.List[string, Lesson]
	registryMu sync.RWMutex
)

// Register adds a lesson to the registry, replacing any lesson
// with the same name.
func Register(ls Lesson) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry.Set(ls.Name, ls)
}

// All returns all registered lessons, in registration order.
func All() []Lesson {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Clone(registry.Values)
}

// Names returns the names of all registered lessons.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Clone(registry.Keys)
}

// Lookup returns the lesson with the given name.
func Lookup(name string) (Lesson, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ls, ok := registry.AtTry(name)
	if !ok {
		return Lesson{}, fmt.Errorf("lessons: unknown lesson %q", name)
	}
	return ls, nil
}

func init() {
	Register(Lesson{Name: "gold-cube", Title: "Gold Cube", Group: 1, New: NewGoldCube})
	Register(Lesson{Name: "draw-square", Title: "Draw a Square", Group: 2, New: NewDrawSquare})
	Register(Lesson{Name: "draw-polygon", Title: "Draw a Polygon", Group: 2, New: NewDrawPolygon})
	Register(Lesson{Name: "drinking-bird", Title: "Drinking Bird", Group: 2, New: NewDrinkingBird})
	Register(Lesson{Name: "stairway", Title: "Stairway", Group: 2, New: NewStairway})
	Register(Lesson{Name: "diffuse-sphere", Title: "Diffuse Sphere", Group: 3, New: NewDiffuseSphere})
	Register(Lesson{Name: "rgb-triangle", Title: "RGB Triangle", Group: 3, New: NewRGBTriangle})
	Register(Lesson{Name: "flower", Title: "Flower", Group: 4, New: NewFlower})
	Register(Lesson{Name: "robot-arm", Title: "Robot Arm", Group: 4, New: NewRobotArm})
	Register(Lesson{Name: "capsule", Title: "Capsule", Group: 5, New: NewCapsule})
	Register(Lesson{Name: "cylinder-positioning", Title: "Cylinder Positioning", Group: 5, New: NewCylinderPositioning})
	Register(Lesson{Name: "helices", Title: "Helices", Group: 5, New: NewHelices})
	Register(Lesson{Name: "ornament", Title: "Ornament", Group: 5, New: NewOrnament})
}
