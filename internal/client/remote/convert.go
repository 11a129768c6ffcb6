package remote

import (
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toWire(c *models.CloudProject) *pb.Project {
	n := c.Nudge()
	return &pb.Project{
		Id:                 c.ID,
		UserId:             c.UserID,
		Title:              c.Title,
		ContentData:        c.ContentData,
		Deadline:           timeToWire(c.Deadline),
		CreatedAt:          timestamppb.New(c.CreatedAt),
		LastEditedAt:       timestamppb.New(c.LastEditedAt),
		LastProgressAt:     timeToWire(c.LastProgressAt),
		NudgeEnabled:       n.Enabled,
		NudgeMode:          string(n.Mode),
		NudgeHour:          int32(n.Hour),
		NudgeMinute:        int32(n.Minute),
		MaxInactivityHours: int32(n.MaxInactivityHours),
		UpdatedAt:          timestamppb.New(c.UpdatedAt),
		IsArchived:         c.IsArchived,
	}
}

func fromWire(p *pb.Project) *models.CloudProject {
	c := &models.CloudProject{
		ID:             p.GetId(),
		UserID:         p.GetUserId(),
		Title:          p.GetTitle(),
		ContentData:    p.ContentData,
		Deadline:       timeFromWire(p.GetDeadline()),
		CreatedAt:      p.GetCreatedAt().AsTime(),
		LastEditedAt:   p.GetLastEditedAt().AsTime(),
		LastProgressAt: timeFromWire(p.GetLastProgressAt()),
		UpdatedAt:      p.GetUpdatedAt().AsTime(),
		IsArchived:     p.GetIsArchived(),
	}
	c.SetNudge(models.Nudge{
		Enabled:            p.GetNudgeEnabled(),
		Mode:               models.NudgeMode(p.GetNudgeMode()),
		Hour:               int(p.GetNudgeHour()),
		Minute:             int(p.GetNudgeMinute()),
		MaxInactivityHours: int(p.GetMaxInactivityHours()),
	})
	return c
}

// timeToWire keeps a missing optional time unset on the wire.
func timeToWire(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func timeFromWire(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
