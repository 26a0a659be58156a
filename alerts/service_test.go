package alerts_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/glucotrack/monitoring/alerts"
	alertsTest "github.com/glucotrack/monitoring/alerts/test"
	"github.com/glucotrack/monitoring/store"
)

var _ = Describe("Alerts Service", func() {
	var service alerts.Service
	var repo *alertsTest.MockRepository
	var repoCtrl *gomock.Controller
	var ctx context.Context

	BeforeEach(func() {
		repoCtrl = gomock.NewController(GinkgoT())
		repo = alertsTest.NewMockRepository(repoCtrl)
		ctx = context.Background()

		var err error
		service, err = alerts.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		repoCtrl.Finish()
	})

	Describe("Create", func() {
		var alertType alerts.AlertType
		var userId int
		var message string

		BeforeEach(func() {
			alertType = alerts.AlertType{
				Id:    primitive.NewObjectID(),
				Label: alerts.NoMeasurements,
			}
			userId = 1234
			message = "No glycemic measurements registered for 21/03/2025"
		})

		When("the label is not in the catalog", func() {
			BeforeEach(func() {
				repo.EXPECT().
					ResolveType(gomock.Any(), gomock.Eq("BOGUS_LABEL")).
					Return(nil, nil)
			})

			It("silently skips the alert", func() {
				err := service.Create(ctx, "BOGUS_LABEL", userId, message, []int{userId})
				Expect(err).ToNot(HaveOccurred())
			})
		})

		When("the catalog lookup fails", func() {
			BeforeEach(func() {
				repo.EXPECT().
					ResolveType(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("store unreachable"))
			})

			It("propagates the error", func() {
				err := service.Create(ctx, alerts.NoMeasurements, userId, message, []int{userId})
				Expect(err).To(HaveOccurred())
			})
		})

		When("an identical alert was already created today", func() {
			BeforeEach(func() {
				repo.EXPECT().
					ResolveType(gomock.Any(), gomock.Eq(alerts.NoMeasurements)).
					Return(&alertType, nil)
				repo.EXPECT().
					Exists(gomock.Any(), gomock.Eq(userId), gomock.Eq(alertType.Id), gomock.Eq(message), gomock.Any()).
					Return(true, nil)
			})

			It("does not create a second alert", func() {
				err := service.Create(ctx, alerts.NoMeasurements, userId, message, []int{userId})
				Expect(err).ToNot(HaveOccurred())
			})
		})

		When("no identical alert exists", func() {
			var created alerts.Alert

			BeforeEach(func() {
				created = alerts.Alert{}
				repo.EXPECT().
					ResolveType(gomock.Any(), gomock.Eq(alerts.NoMeasurements)).
					Return(&alertType, nil)
				repo.EXPECT().
					Exists(gomock.Any(), gomock.Eq(userId), gomock.Eq(alertType.Id), gomock.Eq(message), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					CreateAlert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, alert alerts.Alert) (*alerts.Alert, error) {
						created = alert
						created.Id = primitive.NewObjectID()
						return &created, nil
					})
			})

			It("persists the alert stamped with the current day", func() {
				repo.EXPECT().
					CreateRecipient(gomock.Any(), gomock.Any()).
					Return(nil)

				err := service.Create(ctx, alerts.NoMeasurements, userId, message, []int{userId})
				Expect(err).ToNot(HaveOccurred())
				Expect(created.UserId).To(Equal(userId))
				Expect(created.AlertTypeId).To(Equal(alertType.Id))
				Expect(created.Message).To(Equal(message))
				Expect(store.SameDay(created.CreatedAt, time.Now())).To(BeTrue())
			})

			It("persists one recipient per distinct non-zero id", func() {
				doctorId := 99
				gomock.InOrder(
					repo.EXPECT().
						CreateRecipient(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, recipient alerts.Recipient) error {
							Expect(recipient.AlertId).To(Equal(created.Id))
							Expect(recipient.RecipientUserId).To(Equal(userId))
							Expect(recipient.IsRead).To(BeFalse())
							return nil
						}),
					repo.EXPECT().
						CreateRecipient(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, recipient alerts.Recipient) error {
							Expect(recipient.AlertId).To(Equal(created.Id))
							Expect(recipient.RecipientUserId).To(Equal(doctorId))
							Expect(recipient.IsRead).To(BeFalse())
							return nil
						}),
				)

				err := service.Create(ctx, alerts.NoMeasurements, userId, message, []int{userId, 0, userId, doctorId})
				Expect(err).ToNot(HaveOccurred())
			})

			It("never persists the zero doctor sentinel", func() {
				repo.EXPECT().
					CreateRecipient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, recipient alerts.Recipient) error {
						Expect(recipient.RecipientUserId).ToNot(BeZero())
						return nil
					}).
					Times(1)

				err := service.Create(ctx, alerts.NoMeasurements, userId, message, []int{userId, 0})
				Expect(err).ToNot(HaveOccurred())
			})

			It("leaves the alert in place when a recipient insert fails", func() {
				repo.EXPECT().
					CreateRecipient(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))

				err := service.Create(ctx, alerts.NoMeasurements, userId, message, []int{userId})
				Expect(err).To(HaveOccurred())
				Expect(created.UserId).To(Equal(userId))
			})
		})
	})
})
