package monitor_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/glucotrack/monitoring/alerts"
	alertsTest "github.com/glucotrack/monitoring/alerts/test"
	"github.com/glucotrack/monitoring/monitor"
	"github.com/glucotrack/monitoring/users"
	usersTest "github.com/glucotrack/monitoring/users/test"
)

var _ = Describe("Reporter", func() {
	var reporter *monitor.Reporter
	var alertsRepo *alertsTest.MockRepository
	var directory *usersTest.MockRepository
	var ctrl *gomock.Controller
	var ctx context.Context

	var day time.Time
	var noMeasurements alerts.AlertType
	var adherenceMissing alerts.AlertType
	var patient users.User

	newAlert := func(typeId primitive.ObjectID, userId int) alerts.Alert {
		return alerts.Alert{
			Id:          primitive.NewObjectID(),
			UserId:      userId,
			AlertTypeId: typeId,
			Message:     "message",
			CreatedAt:   day.Add(4 * time.Hour),
		}
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		alertsRepo = alertsTest.NewMockRepository(ctrl)
		directory = usersTest.NewMockRepository(ctrl)
		ctx = context.Background()

		day = time.Date(2025, time.March, 21, 0, 0, 0, 0, time.Local)
		noMeasurements = alerts.AlertType{Id: primitive.NewObjectID(), Label: alerts.NoMeasurements}
		adherenceMissing = alerts.AlertType{Id: primitive.NewObjectID(), Label: alerts.AdherenceMissing}
		patient = usersTest.RandomPatient()

		var err error
		reporter, err = monitor.NewReporter(alertsRepo, directory)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	When("no alerts were created on the day", func() {
		BeforeEach(func() {
			alertsRepo.EXPECT().ListCreatedOn(gomock.Any(), gomock.Eq(day)).Return(nil, nil)
			alertsRepo.EXPECT().ListTypes(gomock.Any()).Return([]alerts.AlertType{noMeasurements}, nil)
			directory.EXPECT().GetUsersByIds(gomock.Any(), gomock.Any()).Return(nil, nil)
		})

		It("produces an empty report", func() {
			report, err := reporter.Generate(ctx, day)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Total).To(BeZero())
			Expect(report.Groups).To(BeEmpty())

			var sb strings.Builder
			report.Print(&sb)
			Expect(sb.String()).To(ContainSubstring("No alerts generated today."))
		})
	})

	When("alerts of multiple types were created", func() {
		var other users.User

		BeforeEach(func() {
			other = usersTest.RandomPatient()
			created := []alerts.Alert{
				newAlert(noMeasurements.Id, patient.UserId),
				newAlert(noMeasurements.Id, other.UserId),
				newAlert(noMeasurements.Id, patient.UserId),
				newAlert(adherenceMissing.Id, patient.UserId),
			}
			alertsRepo.EXPECT().ListCreatedOn(gomock.Any(), gomock.Eq(day)).Return(created, nil)
			alertsRepo.EXPECT().ListTypes(gomock.Any()).
				Return([]alerts.AlertType{noMeasurements, adherenceMissing}, nil)
			directory.EXPECT().GetUsersByIds(gomock.Any(), gomock.Any()).
				Return(map[int]users.User{patient.UserId: patient}, nil)
		})

		It("groups alerts by type, largest group first", func() {
			report, err := reporter.Generate(ctx, day)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Total).To(Equal(4))
			Expect(report.Groups).To(HaveLen(2))
			Expect(report.Groups[0].Label).To(Equal(alerts.NoMeasurements))
			Expect(report.Groups[0].Count).To(Equal(3))
			Expect(report.Groups[1].Label).To(Equal(alerts.AdherenceMissing))
			Expect(report.Groups[1].Count).To(Equal(1))
		})

		It("lists each subject once, falling back to the raw user id", func() {
			report, err := reporter.Generate(ctx, day)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Groups[0].Subjects).To(ConsistOf(
				patient.FirstName+" "+patient.LastName,
				ContainSubstring("UserId"),
			))
		})
	})
})
