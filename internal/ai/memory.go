package ai

import (
	"sort"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// DefaultMemoryWindow is how many recent tricks the hard AI remembers.
const DefaultMemoryWindow = 7

// MemoryEntry records one observed card play.
type MemoryEntry struct {
	Card        card.Card
	PlayerIndex int
	TrickNumber int
	// WasVoidPlay marks a card that did not follow the lead suit.
	WasVoidPlay bool
}

// MoonBehavior aggregates the signals that suggest a player is going for
// the moon.
type MoonBehavior struct {
	LedQueenOfSpades        bool
	HighCardLeads           int
	HeartsWonWhileWinning   int
	VoluntaryWins           int
	MissedDumpOpportunities int
}

// CardMemory is the hard AI's sliding-window record of the last W tricks.
// Entries older than the window are pruned, so facts derived purely from
// entries (including whether the queen of spades has been seen) are
// forgotten once they age out. That bounded lookback is deliberate: the
// hard AI misremembers like a human does. Void-suit knowledge is the one
// exception; once a player shows void in a suit that holds for the rest of
// the round regardless of pruning.
type CardMemory struct {
	window  int
	entries []MemoryEntry
	voids   map[int]map[card.Suit]bool
	moon    map[int]*MoonBehavior
}

// NewCardMemory creates a memory over the last window tricks. A
// non-positive window uses DefaultMemoryWindow.
func NewCardMemory(window int) *CardMemory {
	if window <= 0 {
		window = DefaultMemoryWindow
	}
	m := &CardMemory{window: window}
	m.Reset()
	return m
}

// Reset clears everything for a new round.
func (m *CardMemory) Reset() {
	m.entries = nil
	m.voids = make(map[int]map[card.Suit]bool)
	m.moon = make(map[int]*MoonBehavior)
}

// RecordTrick ingests a completed trick: one entry per played card, void
// detection, and moon-behavior signals. seatOf resolves a player ID to its
// seat index. Entries older than the window are pruned afterwards.
func (m *CardMemory) RecordTrick(trick rules.Trick, seatOf func(string) int, winnerIndex, trickNumber int) {
	if len(trick) == 0 {
		return
	}
	leadSuit := trick[0].Card.Suit

	for _, play := range trick {
		seat := seatOf(play.PlayerID)
		if seat < 0 {
			continue
		}
		voidPlay := play.Card.Suit != leadSuit
		m.entries = append(m.entries, MemoryEntry{
			Card:        play.Card,
			PlayerIndex: seat,
			TrickNumber: trickNumber,
			WasVoidPlay: voidPlay,
		})
		if voidPlay {
			m.markVoid(seat, leadSuit)
			// Sloughing junk while points were there to dump reads as
			// protecting a moon run.
			if !play.Card.IsPenalty() && play.Card.Rank <= card.Ten && m.unseenPenaltyCount() > 0 {
				m.behavior(seat).MissedDumpOpportunities++
			}
		}
	}

	m.recordMoonSignals(trick, seatOf, winnerIndex)
	m.prune(trickNumber)
}

func (m *CardMemory) recordMoonSignals(trick rules.Trick, seatOf func(string) int, winnerIndex int) {
	leader := seatOf(trick[0].PlayerID)
	if leader >= 0 {
		if trick[0].Card == card.QueenOfSpades {
			m.behavior(leader).LedQueenOfSpades = true
		}
		if trick[0].Card.Rank >= card.Jack {
			m.behavior(leader).HighCardLeads++
		}
	}

	if winnerIndex < 0 {
		return
	}
	behavior := m.behavior(winnerIndex)
	trickPoints := trick.TotalPoints()
	for _, play := range trick {
		if play.Card.Suit == card.Hearts {
			behavior.HeartsWonWhileWinning++
		}
	}
	if trickPoints > 0 {
		// Winning by a clear margin over the next lead-suit card suggests
		// the winner had room to duck and chose not to.
		winnerSlot := rules.TrickWinner(trick)
		winnerRank := trick[winnerSlot].Card.Rank
		leadSuit := trick[0].Card.Suit
		margin := card.Rank(0)
		for i, play := range trick {
			if i != winnerSlot && play.Card.Suit == leadSuit && winnerRank-play.Card.Rank > margin {
				margin = winnerRank - play.Card.Rank
			}
		}
		if margin >= 3 {
			behavior.VoluntaryWins++
		}
	}
}

func (m *CardMemory) markVoid(seat int, suit card.Suit) {
	if m.voids[seat] == nil {
		m.voids[seat] = make(map[card.Suit]bool)
	}
	m.voids[seat][suit] = true
}

func (m *CardMemory) behavior(seat int) *MoonBehavior {
	if m.moon[seat] == nil {
		m.moon[seat] = &MoonBehavior{}
	}
	return m.moon[seat]
}

// prune drops entries that fall outside the sliding window ending at the
// given trick number.
func (m *CardMemory) prune(latestTrick int) {
	cutoff := latestTrick - m.window + 1
	if cutoff <= 0 {
		return
	}
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.TrickNumber >= cutoff {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}

// IsVoid reports whether a player has shown void in a suit this round. Void
// knowledge never reverses, even after the revealing play ages out of the
// window.
func (m *CardMemory) IsVoid(seat int, suit card.Suit) bool {
	return m.voids[seat][suit]
}

// KnownVoids lists the suits a player has shown void in, in presentation
// order.
func (m *CardMemory) KnownVoids(seat int) []card.Suit {
	var voids []card.Suit
	for _, suit := range card.Suits {
		if m.voids[seat][suit] {
			voids = append(voids, suit)
		}
	}
	return voids
}

// IsQueenOfSpadesPlayed reports whether the queen of spades is in the
// remembered window. A queen played more than window tricks ago reads as
// not played.
func (m *CardMemory) IsQueenOfSpadesPlayed() bool {
	return m.WhoPlayedQueenOfSpades() >= 0
}

// WhoPlayedQueenOfSpades returns the seat that played the queen within the
// window, or -1.
func (m *CardMemory) WhoPlayedQueenOfSpades() int {
	for _, e := range m.entries {
		if e.Card == card.QueenOfSpades {
			return e.PlayerIndex
		}
	}
	return -1
}

// GetMoonBehavior returns the aggregated moon signals for a seat.
func (m *CardMemory) GetMoonBehavior(seat int) MoonBehavior {
	if b := m.moon[seat]; b != nil {
		return *b
	}
	return MoonBehavior{}
}

// MoonSuspicion scores how strongly a seat's observed behavior looks like a
// moon attempt.
func (m *CardMemory) MoonSuspicion(seat int) float64 {
	b := m.GetMoonBehavior(seat)
	score := 0.0
	if b.LedQueenOfSpades {
		score += 3.0
	}
	score += 1.5 * float64(b.HighCardLeads)
	score += 2.0 * float64(b.HeartsWonWhileWinning)
	score += 2.5 * float64(b.VoluntaryWins)
	score += 1.0 * float64(b.MissedDumpOpportunities)
	return score
}

// GetSuspiciousMoonPlayers ranks seats by descending moon suspicion,
// omitting seats with no signal at all.
func (m *CardMemory) GetSuspiciousMoonPlayers() []int {
	var seats []int
	for seat := range m.moon {
		if m.MoonSuspicion(seat) > 0 {
			seats = append(seats, seat)
		}
	}
	sort.Slice(seats, func(i, j int) bool {
		si, sj := m.MoonSuspicion(seats[i]), m.MoonSuspicion(seats[j])
		if si != sj {
			return si > sj
		}
		return seats[i] < seats[j]
	})
	return seats
}

// GetUnseenHighCards lists the cards of a suit at or above the threshold
// rank that do not appear in the remembered window, ascending by rank.
func (m *CardMemory) GetUnseenHighCards(suit card.Suit, threshold card.Rank) []card.Card {
	seen := make(map[card.Card]bool, len(m.entries))
	for _, e := range m.entries {
		seen[e.Card] = true
	}
	var unseen []card.Card
	for rank := threshold; rank <= card.Ace; rank++ {
		c := card.Card{Suit: suit, Rank: rank}
		if !seen[c] {
			unseen = append(unseen, c)
		}
	}
	return unseen
}

// MightHaveHighCards reports whether a seat could still hold high cards of
// a suit: not known void, and high cards of the suit remain unseen.
func (m *CardMemory) MightHaveHighCards(seat int, suit card.Suit) bool {
	if m.IsVoid(seat, suit) {
		return false
	}
	return len(m.GetUnseenHighCards(suit, card.Jack)) > 0
}

func (m *CardMemory) unseenPenaltyCount() int {
	seen := 0
	for _, e := range m.entries {
		if e.Card.IsPenalty() {
			seen += e.Card.Points()
		}
	}
	return rules.MoonPoints - seen
}
