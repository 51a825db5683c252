package domain

import "fmt"

// TrainVariant is one purchasable configuration of a train.
type TrainVariant struct {
	Name  string
	Price int
}

// Train is a unit of equipment. Name and Price reflect the selected variant.
type Train struct {
	ID            string
	Name          string
	Price         int
	FuelDependent bool
	Variants      []TrainVariant
	Owner         *Corporation
}

// Variant looks up a configuration by name.
func (t *Train) Variant(name string) (TrainVariant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return TrainVariant{}, false
}

// SelectVariant switches the train to the named configuration.
func (t *Train) SelectVariant(name string) error {
	if name == "" || name == t.Name {
		return nil
	}
	v, ok := t.Variant(name)
	if !ok {
		return fmt.Errorf("train %s has no variant %q", t.ID, name)
	}
	t.Name = v.Name
	t.Price = v.Price
	return nil
}

// Alternates returns the configurations other than the selected one.
func (t *Train) Alternates() []TrainVariant {
	var out []TrainVariant
	for _, v := range t.Variants {
		if v.Name != t.Name {
			out = append(out, v)
		}
	}
	return out
}

// RemoveVariants drops every configuration except the selected one.
func (t *Train) RemoveVariants() {
	kept := make([]TrainVariant, 0, 1)
	for _, v := range t.Variants {
		if v.Name == t.Name {
			kept = append(kept, v)
			break
		}
	}
	if len(kept) == 0 {
		kept = append(kept, TrainVariant{Name: t.Name, Price: t.Price})
	}
	t.Variants = kept
}

// Depot is the shared, ordered pool of purchasable trains.
type Depot struct {
	trains []*Train
}

// NewDepot creates a depot in purchase order.
func NewDepot(trains ...*Train) *Depot {
	return &Depot{trains: append([]*Train(nil), trains...)}
}

// Trains returns the purchasable trains in order.
func (d *Depot) Trains() []*Train {
	out := make([]*Train, len(d.trains))
	copy(out, d.trains)
	return out
}

// First returns the head of the queue, or nil when the depot is empty.
func (d *Depot) First() *Train {
	if len(d.trains) == 0 {
		return nil
	}
	return d.trains[0]
}

// Contains reports whether t is still purchasable.
func (d *Depot) Contains(t *Train) bool {
	for _, tr := range d.trains {
		if tr == t {
			return true
		}
	}
	return false
}

// Remove takes t out of the depot.
func (d *Depot) Remove(t *Train) bool {
	for i, tr := range d.trains {
		if tr == t {
			d.trains = append(d.trains[:i], d.trains[i+1:]...)
			return true
		}
	}
	return false
}
