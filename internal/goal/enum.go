package goal

type GoalPeriod string

const (
	PeriodDaily       GoalPeriod = "DAILY"
	PeriodWeekly      GoalPeriod = "WEEKLY"
	PeriodMonthly     GoalPeriod = "MONTHLY"
	PeriodThreeMonths GoalPeriod = "THREE_MONTHS"
	PeriodSixMonths   GoalPeriod = "SIX_MONTHS"
	PeriodYearly      GoalPeriod = "YEARLY"
)

var AllPeriods = []GoalPeriod{
	PeriodDaily,
	PeriodWeekly,
	PeriodMonthly,
	PeriodThreeMonths,
	PeriodSixMonths,
	PeriodYearly,
}

func (p GoalPeriod) IsValid() bool {
	for _, v := range AllPeriods {
		if p == v {
			return true
		}
	}
	return false
}

type GoalPriority string

const (
	PriorityLow    GoalPriority = "LOW"
	PriorityMedium GoalPriority = "MEDIUM"
	PriorityHigh   GoalPriority = "HIGH"
)

var AllPriorities = []GoalPriority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (p GoalPriority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}
