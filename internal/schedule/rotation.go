package schedule

import "github.com/j-r-j/gridiron/internal/domain"

// RotationEpoch anchors both rotation cycles. 2002 is the first season of
// the current eight-division alignment; every cycle index is taken relative
// to it so the tables stay total over any integer year.
const RotationEpoch = 2002

func cycleIndex(year, period int) int {
	m := (year - RotationEpoch) % period
	if m < 0 {
		m += period
	}
	return m
}

// intraPartners[c][d] is division d's partner in cycle year c. Each row is
// an involution over the four divisions, and the three rows together pair
// every division with each of the other three exactly once.
var intraPartners = [3][4]domain.Division{
	{domain.North, domain.East, domain.West, domain.South},
	{domain.South, domain.West, domain.East, domain.North},
	{domain.West, domain.South, domain.North, domain.East},
}

// IntraconferenceOpponent returns the same-conference division whose four
// teams the given division plays in full for the year. The pairing advances
// on a three-year cycle and is symmetric within a year: if A's partner is B,
// B's partner is A.
func IntraconferenceOpponent(div domain.Division, year int) domain.Division {
	return intraPartners[cycleIndex(year, 3)][div]
}

// InterconferenceOpponent returns the opposite-conference division paired
// with the given division for the year. AFC division d pairs NFC division
// (d+c) mod 4, so four consecutive years cover all four opposite divisions.
func InterconferenceOpponent(conf domain.Conference, div domain.Division, year int) domain.Division {
	c := cycleIndex(year, 4)
	if conf == domain.AFC {
		return domain.Division((int(div) + c) % 4)
	}
	return domain.Division(((int(div)-c)%4 + 4) % 4)
}

// ExtraGameOpponentDivision derives the seventeenth-game pairing from the
// interconference table two years back. The two-year lag can never collide
// with the current interconference partner on a four-year cycle.
func ExtraGameOpponentDivision(conf domain.Conference, div domain.Division, year int) domain.Division {
	return InterconferenceOpponent(conf, div, year-2)
}

// ExtraGameHostConference returns the conference hosting every seventeenth
// game in a year: AFC in odd years, NFC in even years. The same parity
// decides the Super Bowl home designation.
func ExtraGameHostConference(year int) domain.Conference {
	return domain.HostConference(year)
}
