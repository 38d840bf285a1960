package mapper

import (
	"team-portal-service/internal/domain"
	"team-portal-service/internal/dto"
)

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	members := make([]dto.TeamMemberDTO, len(team.Members))
	for i, m := range team.Members {
		members[i] = dto.TeamMemberDTO{
			StudentID: m.StudentID,
			JoinedAt:  m.JoinedAt,
		}
	}
	return dto.TeamDTO{
		TeamID:             team.TeamID,
		EventID:            team.EventID,
		TeamName:           team.TeamName,
		LeaderID:           team.LeaderID,
		JoinCode:           team.JoinCode,
		CoordinatorComment: team.CoordinatorComment,
		CreatedAt:          team.CreatedAt,
		Members:            members,
	}
}

func MapTeamDetailToDTO(team *domain.Team, score int, memberScores []domain.MemberScore) dto.TeamDetailDTO {
	scores := make([]dto.MemberScoreDTO, len(memberScores))
	for i, ms := range memberScores {
		scores[i] = dto.MemberScoreDTO{
			StudentID:  ms.StudentID,
			Status:     ms.Status,
			Points:     ms.Points,
			Percentage: ms.Percentage,
		}
	}
	return dto.TeamDetailDTO{
		TeamDTO:      MapDomainTeamToDTO(team),
		Score:        score,
		MemberScores: scores,
	}
}

// Leaderboard mappers
func MapStandingsToDTO(standings []domain.TeamStanding) []dto.TeamStandingDTO {
	result := make([]dto.TeamStandingDTO, len(standings))
	for i, s := range standings {
		result[i] = dto.TeamStandingDTO{
			Rank:     s.Rank,
			Score:    s.Score,
			TeamID:   s.Team.TeamID,
			TeamName: s.Team.TeamName,
			LeaderID: s.Team.LeaderID,
			Members:  s.Team.MemberIDs(),
		}
	}
	return result
}
