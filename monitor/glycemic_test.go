package monitor_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/glucotrack/monitoring/alerts"
	alertsTest "github.com/glucotrack/monitoring/alerts/test"
	"github.com/glucotrack/monitoring/config"
	measurementsTest "github.com/glucotrack/monitoring/measurements/test"
	"github.com/glucotrack/monitoring/monitor"
	"github.com/glucotrack/monitoring/pointer"
	"github.com/glucotrack/monitoring/users"
	usersTest "github.com/glucotrack/monitoring/users/test"
)

var _ = Describe("Glycemic Monitor", func() {
	var glycemic *monitor.GlycemicMonitor
	var directory *usersTest.MockRepository
	var repo *measurementsTest.MockRepository
	var alertsService *alertsTest.MockService
	var ctrl *gomock.Controller
	var ctx context.Context

	var day time.Time
	var patient users.User
	var doctorId int

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		directory = usersTest.NewMockRepository(ctrl)
		repo = measurementsTest.NewMockRepository(ctrl)
		alertsService = alertsTest.NewMockService(ctrl)
		ctx = context.Background()

		day = time.Date(2025, time.March, 21, 0, 0, 0, 0, time.Local)
		patient = usersTest.RandomPatient()
		doctorId = patient.UserId + 1

		cfg := &config.Config{
			MinDailyMeasurements: 6,
			ShortfallWindowDays:  3,
		}

		var err error
		glycemic, err = monitor.NewGlycemicMonitor(directory, repo, alertsService, cfg, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())

		directory.EXPECT().
			ListActivePatients(gomock.Any()).
			Return([]users.User{patient}, nil)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("CheckDaily", func() {
		When("the patient has no measurements", func() {
			BeforeEach(func() {
				repo.EXPECT().
					CountOnDay(gomock.Any(), gomock.Eq(patient.UserId), gomock.Eq(day)).
					Return(0, nil)
				directory.EXPECT().
					GetAssignedDoctor(gomock.Any(), gomock.Eq(patient.UserId)).
					Return(pointer.FromAny(doctorId), nil)
			})

			It("alerts the patient and the doctor", func() {
				alertsService.EXPECT().
					Create(gomock.Any(),
						gomock.Eq(alerts.NoMeasurements),
						gomock.Eq(patient.UserId),
						gomock.Eq("No glycemic measurements registered for 21/03/2025"),
						gomock.Eq([]int{patient.UserId, doctorId})).
					Return(nil)

				Expect(glycemic.CheckDaily(ctx, day)).To(Succeed())
			})
		})

		When("the patient has fewer measurements than required", func() {
			BeforeEach(func() {
				repo.EXPECT().
					CountOnDay(gomock.Any(), gomock.Eq(patient.UserId), gomock.Eq(day)).
					Return(3, nil)
			})

			It("raises a partial measurements alert naming the count", func() {
				directory.EXPECT().
					GetAssignedDoctor(gomock.Any(), gomock.Eq(patient.UserId)).
					Return(pointer.FromAny(doctorId), nil)
				alertsService.EXPECT().
					Create(gomock.Any(),
						gomock.Eq(alerts.PartialMeasurements),
						gomock.Eq(patient.UserId),
						gomock.Eq("Only 3 glycemic measurements registered for 21/03/2025"),
						gomock.Eq([]int{patient.UserId, doctorId})).
					Return(nil)

				Expect(glycemic.CheckDaily(ctx, day)).To(Succeed())
			})

			It("passes the zero sentinel when no doctor is assigned", func() {
				directory.EXPECT().
					GetAssignedDoctor(gomock.Any(), gomock.Eq(patient.UserId)).
					Return(nil, nil)
				alertsService.EXPECT().
					Create(gomock.Any(),
						gomock.Eq(alerts.PartialMeasurements),
						gomock.Eq(patient.UserId),
						gomock.Any(),
						gomock.Eq([]int{patient.UserId, 0})).
					Return(nil)

				Expect(glycemic.CheckDaily(ctx, day)).To(Succeed())
			})
		})

		When("the patient has enough measurements", func() {
			BeforeEach(func() {
				repo.EXPECT().
					CountOnDay(gomock.Any(), gomock.Eq(patient.UserId), gomock.Eq(day)).
					Return(6, nil)
			})

			It("does not raise any alert", func() {
				Expect(glycemic.CheckDaily(ctx, day)).To(Succeed())
			})
		})
	})

	Describe("CheckRepeatedShortfall", func() {
		expectCounts := func(counts ...int) {
			for i, count := range counts {
				repo.EXPECT().
					CountOnDay(gomock.Any(), gomock.Eq(patient.UserId), gomock.Eq(day.AddDate(0, 0, -i))).
					Return(count, nil)
			}
		}

		When("every day of the window is below the required count", func() {
			BeforeEach(func() {
				expectCounts(3, 2, 0)
				directory.EXPECT().
					GetAssignedDoctor(gomock.Any(), gomock.Eq(patient.UserId)).
					Return(pointer.FromAny(doctorId), nil)
			})

			It("raises a repeated shortfall alert listing each day and count", func() {
				alertsService.EXPECT().
					Create(gomock.Any(),
						gomock.Eq(alerts.RepeatedPartialMeasurements),
						gomock.Eq(patient.UserId),
						gomock.Eq("Less than 6 glycemic measurements for 3 consecutive days: 21/03: 3, 20/03: 2, 19/03: 0"),
						gomock.Eq([]int{patient.UserId, doctorId})).
					Return(nil)

				Expect(glycemic.CheckRepeatedShortfall(ctx, day)).To(Succeed())
			})
		})

		When("a single day in the window meets the required count", func() {
			BeforeEach(func() {
				expectCounts(3, 7, 2)
			})

			It("does not raise any alert", func() {
				Expect(glycemic.CheckRepeatedShortfall(ctx, day)).To(Succeed())
			})
		})
	})
})
