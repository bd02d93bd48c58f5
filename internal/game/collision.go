package game

// GameOverReason says why a session ended.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonCollision
	ReasonOutOfEnergy
)

// String returns a human-readable reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	case ReasonOutOfEnergy:
		return "out of energy"
	default:
		return "unknown"
	}
}

// contact is one classified contact between the hero and another
// entity, produced by the physics step and consumed by the router.
type contact struct {
	category Category
	poleSet  *PoleSet     // Set for CategoryScoreZone and CategoryPole
	item     *Collectible // Set for CategoryCoin and CategoryBurger
}

// detectContacts classifies this tick's contacts against the hero's
// final position. Zones come first so a pass is scored even on the
// frame the hero clips a pole edge; fatal categories come last.
func (g *Game) detectContacts() []contact {
	heroRect := g.hero.Rect()
	var contacts []contact

	for _, ps := range g.obstacles.Active() {
		if !ps.Scored && heroRect.Overlaps(ps.ZoneRect()) {
			contacts = append(contacts, contact{category: CategoryScoreZone, poleSet: ps})
		}
	}

	for _, c := range g.collectibles.Active() {
		if c.Collected {
			continue
		}
		if heroRect.OverlapsCircle(c.Pos, c.Radius) {
			cat := CategoryCoin
			if c.Kind == KindBurger {
				cat = CategoryBurger
			}
			contacts = append(contacts, contact{category: cat, item: c})
		}
	}

	for _, ps := range g.obstacles.Active() {
		if heroRect.Overlaps(ps.TopRect()) || heroRect.Overlaps(ps.BottomRect()) {
			contacts = append(contacts, contact{category: CategoryPole, poleSet: ps})
		}
	}

	if heroRect.Y < g.cfg.Obstacles.FloorHeight {
		contacts = append(contacts, contact{category: CategoryFloor})
	}

	return contacts
}

// routeContacts applies the contact rules in order, first match wins
// per contact. A fatal contact ends the session and stops routing.
func (g *Game) routeContacts(contacts []contact) error {
	for _, c := range contacts {
		switch c.category {
		case CategoryScoreZone:
			if !c.poleSet.Scored {
				c.poleSet.Scored = true
				g.mainScore++
			}
		case CategoryCoin:
			if err := g.collectibles.Collect(c.item); err != nil {
				return err
			}
			g.coinScore++
			g.cues.Play(CueCoin)
		case CategoryBurger:
			if err := g.collectibles.Collect(c.item); err != nil {
				return err
			}
			g.burgerScore++
			g.hero.Restore(g.cfg.Stamina.Max)
			g.cues.Play(CueBurger)
		case CategoryPole, CategoryFloor:
			g.finish(ReasonCollision)
			return nil
		}
	}
	return nil
}
